package tracker

import (
	"encoding/json"
	"testing"
)

func TestObjectWriter(t *testing.T) {
	render := func(t *testing.T, w *objectWriter) string {
		t.Helper()
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error: %v", err)
		}
		return string(got)
	}

	t.Run("empty", func(t *testing.T) {
		var w objectWriter
		if got := render(t, &w); got != "{}" {
			t.Errorf("got %s, want {}", got)
		}
	})

	t.Run("keys keep append order", func(t *testing.T) {
		var w objectWriter
		w.Append("z", 1).Append("a", "hello")
		if got, want := render(t, &w), `{"z":1,"a":"hello"}`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("optional skips zero values only", func(t *testing.T) {
		var w objectWriter
		w.Append("kept", 0)
		w.Optional("emptyString", "")
		w.Optional("zero", 0)
		w.Optional("set", "hello")
		if got, want := render(t, &w), `{"kept":0,"set":"hello"}`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embedded fields splice in place", func(t *testing.T) {
		base := struct {
			C int    `json:"c"`
			D string `json:"d"`
		}{C: 3, D: "hello"}
		var w objectWriter
		w.Append("a", 1).EmbedFrom(base).Append("b", 2)
		if got, want := render(t, &w), `{"a":1,"c":3,"d":"hello","b":2}`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embedding raw json", func(t *testing.T) {
		var w objectWriter
		w.EmbedFrom(json.RawMessage(`{"c":3}`)).Append("b", 2)
		if got, want := render(t, &w), `{"c":3,"b":2}`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embedding an empty object adds nothing", func(t *testing.T) {
		var w objectWriter
		w.Append("a", 1).EmbedFrom(struct{}{})
		if got, want := render(t, &w), `{"a":1}`; got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("embedding a non-object is an error", func(t *testing.T) {
		var w objectWriter
		w.EmbedFrom(42)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() after embedding a number: no error")
		}
	})
}
