package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	tracker "github.com/yuppyjoe/Finance-tracker"
)

// testStorage points the commands at a fresh snapshot in a temp dir, away
// from any real config file or environment.
func testStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfig, filepath.Join(dir, "config.yaml"))
	t.Setenv(EnvHistory, "")
	t.Setenv(EnvCurrency, "")
	storage := filepath.Join(dir, "snapshot.json")
	t.Setenv(EnvStorage, storage)
	return storage
}

// runCmd drives a subcommand the way the commander does: parse the args with
// the command's flags, then execute.
func runCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %s args: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), fs)
}

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()
	f()
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestIncome_RecordsAndDistributes(t *testing.T) {
	testStorage(t)

	got := runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer")
	if got != subcommands.ExitSuccess {
		t.Fatalf("income = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	// seeded split 50/30/20 over the 600.00 profit
	for id, want := range map[string]string{"operating": "300.00", "owner-pay": "180.00", "savings": "120.00"} {
		fund, ok := snap.State.Fund(id)
		if !ok {
			t.Fatalf("missing seeded fund %q", id)
		}
		if fund.Balance.String() != want {
			t.Errorf("fund %q balance = %s, want %s", id, fund.Balance, want)
		}
	}
}

func TestExpense_ResolvesTheFundByName(t *testing.T) {
	testStorage(t)
	runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer")

	got := runCmd(t, &expenseCmd{}, "-d", "2025-03-10", "-a", "30", "-s", "Operating", "hosting")
	if got != subcommands.ExitSuccess {
		t.Fatalf("expense = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	fund, _ := snap.State.Fund("operating")
	if fund.Balance.String() != "270.00" {
		t.Errorf("operating balance = %s, want 270.00", fund.Balance)
	}
	var count int
	for range snap.State.Transactions(tracker.AcceptAll) {
		count++
	}
	if count != 2 {
		t.Errorf("transactions = %d, want 2", count)
	}
}

func TestExpense_InsufficientFundsLeavesEverything(t *testing.T) {
	testStorage(t)

	got := runCmd(t, &expenseCmd{}, "-a", "50", "-s", "Operating", "too big")
	if got == subcommands.ExitSuccess {
		t.Fatal("expense = success, want a failure on insufficient funds")
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	fund, _ := snap.State.Fund("operating")
	if !fund.Balance.IsZero() {
		t.Errorf("operating balance = %s, want untouched 0.00", fund.Balance)
	}
	for range snap.State.Transactions(tracker.AcceptAll) {
		t.Error("a rejected expense was recorded")
	}
}

func TestFund_CreateUpdateDelete(t *testing.T) {
	testStorage(t)

	if got := runCmd(t, &fundCmd{}, "create", "-name", "Vacation"); got != subcommands.ExitSuccess {
		t.Fatalf("fund create = %v, want success", got)
	}
	if got := runCmd(t, &fundCmd{}, "update", "-fund", "Vacation", "-name", "Holidays"); got != subcommands.ExitSuccess {
		t.Fatalf("fund update = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := snap.State.FindFund("Holidays"); !ok {
		t.Error("fund was not renamed to Holidays")
	}
	if _, ok := snap.State.FindFund("Vacation"); ok {
		t.Error("the old name Vacation still resolves")
	}

	if got := runCmd(t, &fundCmd{}, "delete", "-fund", "Holidays"); got != subcommands.ExitSuccess {
		t.Fatalf("fund delete = %v, want success", got)
	}
	// a fund holding a distribution share cannot go
	if got := runCmd(t, &fundCmd{}, "delete", "-fund", "Operating"); got == subcommands.ExitSuccess {
		t.Error("fund delete removed a fund holding a distribution share")
	}
}

func TestDistribution_SetReplacesShares(t *testing.T) {
	testStorage(t)

	got := runCmd(t, &distributionCmd{}, "set", "Operating=60", "Owner Pay=40")
	if got != subcommands.ExitSuccess {
		t.Fatalf("distribution set = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	d := snap.State.Distribution()
	if len(d) != 2 || d[0].FundID != "operating" || d[1].FundID != "owner-pay" {
		t.Fatalf("distribution = %v, want operating then owner-pay", d)
	}
	if !d[0].Percent.Equal(60) || !d[1].Percent.Equal(40) {
		t.Errorf("shares = %s, %s, want 60.00%%, 40.00%%", d[0].Percent, d[1].Percent)
	}

	// the tax fund's share belongs to the toggle
	if got := runCmd(t, &distributionCmd{}, "set", "Operating=50", "Taxes=50"); got == subcommands.ExitSuccess {
		t.Error("distribution set granted a share to the tax fund")
	}
	// shares must sum to 100
	if got := runCmd(t, &distributionCmd{}, "set", "Operating=50"); got == subcommands.ExitSuccess {
		t.Error("distribution set accepted shares summing to 50")
	}
}

func TestDistribution_SetKeepsTheTaxShare(t *testing.T) {
	testStorage(t)

	if got := runCmd(t, &taxCmd{}, "on"); got != subcommands.ExitSuccess {
		t.Fatalf("tax on = %v, want success", got)
	}
	if got := runCmd(t, &distributionCmd{}, "set", "Operating=100"); got != subcommands.ExitSuccess {
		t.Fatalf("distribution set = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	d := snap.State.Distribution()
	if len(d) != 2 {
		t.Fatalf("distribution holds %d shares, want operating then taxes", len(d))
	}
	if d[0].FundID != "operating" || !d[0].Percent.Equal(95) {
		t.Errorf("first share = %q %s, want operating 95.00%%", d[0].FundID, d[0].Percent)
	}
	if d[1].FundID != "taxes" || !d[1].Percent.Equal(tracker.TaxPercent) {
		t.Errorf("last share = %q %s, want taxes %s", d[1].FundID, d[1].Percent, tracker.TaxPercent)
	}
}

func TestTax_OnOffRoundTrips(t *testing.T) {
	testStorage(t)

	if got := runCmd(t, &taxCmd{}, "on"); got != subcommands.ExitSuccess {
		t.Fatalf("tax on = %v, want success", got)
	}
	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	d := snap.State.Distribution()
	if !snap.State.TaxEnabled() || len(d) != 4 {
		t.Fatalf("tax on left %d shares, want 4 with the toggle set", len(d))
	}
	if last := d[len(d)-1]; last.FundID != "taxes" || !last.Percent.Equal(tracker.TaxPercent) {
		t.Errorf("last share = %q %s, want taxes %s", last.FundID, last.Percent, tracker.TaxPercent)
	}

	if got := runCmd(t, &taxCmd{}, "off"); got != subcommands.ExitSuccess {
		t.Fatalf("tax off = %v, want success", got)
	}
	snap, err = DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	d = snap.State.Distribution()
	want := []tracker.Percent{50, 30, 20}
	if len(d) != 3 {
		t.Fatalf("tax off left %d shares, want the original 3", len(d))
	}
	for i, share := range d {
		if !share.Percent.Equal(want[i]) {
			t.Errorf("share %d = %s, want %s", i, share.Percent, want[i])
		}
	}
}

func TestBudget_CreateAndDelete(t *testing.T) {
	testStorage(t)

	got := runCmd(t, &budgetCmd{}, "create", "-name", "hosting", "-limit", "40", "-period", "monthly", "-fund", "Operating")
	if got != subcommands.ExitSuccess {
		t.Fatalf("budget create = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	budget, ok := snap.Budgets.Find("hosting")
	if !ok {
		t.Fatal("budget hosting was not saved")
	}
	if budget.FundID != "operating" {
		t.Errorf("budget fund = %q, want the resolved id operating", budget.FundID)
	}

	if got := runCmd(t, &budgetCmd{}, "create", "-name", "hosting", "-limit", "99"); got == subcommands.ExitSuccess {
		t.Error("budget create accepted a duplicate name")
	}

	if got := runCmd(t, &budgetCmd{}, "delete", "-budget", "hosting"); got != subcommands.ExitSuccess {
		t.Fatalf("budget delete = %v, want success", got)
	}
	snap, err = DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Budgets) != 0 {
		t.Errorf("budgets = %d, want none left", len(snap.Budgets))
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	storage := testStorage(t)
	runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer")

	exported := filepath.Join(filepath.Dir(storage), "export.json")
	if got := runCmd(t, &exportCmd{}, "-o", exported); got != subcommands.ExitSuccess {
		t.Fatalf("export = %v, want success", got)
	}

	// import into a fresh storage
	t.Setenv(EnvStorage, filepath.Join(filepath.Dir(storage), "second.json"))
	if got := runCmd(t, &importCmd{}, "-i", exported); got != subcommands.ExitSuccess {
		t.Fatalf("import = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	fund, _ := snap.State.Fund("operating")
	if fund.Balance.String() != "300.00" {
		t.Errorf("imported operating balance = %s, want 300.00", fund.Balance)
	}
}

func TestImport_RefusesVersionMismatch(t *testing.T) {
	storage := testStorage(t)

	stale := filepath.Join(filepath.Dir(storage), "stale.json")
	if err := os.WriteFile(stale, []byte(`{"version": 99, "state": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if got := runCmd(t, &importCmd{}, "-i", stale); got == subcommands.ExitSuccess {
		t.Fatal("import accepted an unsupported snapshot version")
	}
	if _, err := os.Stat(storage); !os.IsNotExist(err) {
		t.Error("a refused import still wrote the storage file")
	}
}

func TestQuery_ReadsTheSnapshot(t *testing.T) {
	testStorage(t)
	runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer")

	out := captureStdout(t, func() {
		if got := runCmd(t, &queryCmd{}, "$.state.funds.operating.currentBalance"); got != subcommands.ExitSuccess {
			t.Errorf("query = %v, want success", got)
		}
	})
	if strings.TrimSpace(out) != "300" {
		t.Errorf("query output = %q, want 300", strings.TrimSpace(out))
	}

	out = captureStdout(t, func() {
		if got := runCmd(t, &queryCmd{}, "$.state.taxEnabled"); got != subcommands.ExitSuccess {
			t.Errorf("query = %v, want success", got)
		}
	})
	if strings.TrimSpace(out) != "false" {
		t.Errorf("query output = %q, want false", strings.TrimSpace(out))
	}

	if got := runCmd(t, &queryCmd{}, "$["); got == subcommands.ExitSuccess {
		t.Error("query accepted an unparseable expression")
	}
}

func TestReportingVerbsSucceed(t *testing.T) {
	testStorage(t)
	runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer")
	runCmd(t, &expenseCmd{}, "-d", "2025-03-10", "-a", "30", "-s", "Operating", "hosting")
	runCmd(t, &budgetCmd{}, "create", "-name", "hosting cap", "-limit", "40")

	cases := []struct {
		name string
		c    subcommands.Command
		args []string
	}{
		{"summary", &summaryCmd{}, []string{"-d", "2025-03-31"}},
		{"tx", &txCmd{}, nil},
		{"tx range", &txCmd{}, []string{"-p", "monthly", "-d", "2025-03-31", "-f", "Operating"}},
		{"fund list", &fundCmd{}, []string{"list"}},
		{"distribution show", &distributionCmd{}, []string{"show"}},
		{"tax status", &taxCmd{}, []string{"status"}},
		{"budget list", &budgetCmd{}, []string{"list", "-d", "2025-03-15"}},
		{"topic", &topicCmd{}, []string{"funds"}},
	}
	for _, tc := range cases {
		captureStdout(t, func() {
			if got := runCmd(t, tc.c, tc.args...); got != subcommands.ExitSuccess {
				t.Errorf("%s = %v, want success", tc.name, got)
			}
		})
	}
}

func TestTx_HeadTailConflict(t *testing.T) {
	testStorage(t)
	if got := runCmd(t, &txCmd{}, "-head", "2", "-tail", "2"); got != subcommands.ExitUsageError {
		t.Errorf("tx -head -tail = %v, want a usage error", got)
	}
}

func TestSeededFirstRun(t *testing.T) {
	storage := testStorage(t)
	config := filepath.Join(filepath.Dir(storage), "config.yaml")
	content := `seeds:
  - name: Rent
    percent: 70
  - name: Fun
    percent: 30
  - name: Taxes
    tax: true
`
	if err := os.WriteFile(config, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, config)

	if got := runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer"); got != subcommands.ExitSuccess {
		t.Fatalf("income = %v, want success", got)
	}

	snap, err := DecodeSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	rent, ok := snap.State.FindFund("Rent")
	if !ok {
		t.Fatal("the seeded Rent fund does not exist")
	}
	if rent.Balance.String() != "420.00" {
		t.Errorf("Rent balance = %s, want 70%% of the 600.00 profit", rent.Balance)
	}
	if _, ok := snap.State.FindFund("Operating"); ok {
		t.Error("the builtin starter funds were seeded despite the config seeds")
	}
	taxes, err := snap.State.FundsByID().TaxFund()
	if err != nil {
		t.Fatalf("seeded state misses a tax fund: %v", err)
	}
	if taxes.Name != "Taxes" {
		t.Errorf("tax fund = %q, want the seeded Taxes", taxes.Name)
	}
}

func TestJournal_WritesHistory(t *testing.T) {
	storage := testStorage(t)
	history := filepath.Join(filepath.Dir(storage), "history.db")
	t.Setenv(EnvHistory, history)

	if got := runCmd(t, &incomeCmd{}, "-d", "2025-03-03", "-a", "1000", "-c", "400", "retainer"); got != subcommands.ExitSuccess {
		t.Fatalf("income = %v, want success", got)
	}
	if _, err := os.Stat(history); err != nil {
		t.Errorf("history database was not created: %v", err)
	}
}

func TestKnown(t *testing.T) {
	for _, name := range []string{"income", "expense", "fund", "query", "help"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if Known("frobnicate") {
		t.Error(`Known("frobnicate") = true, want false`)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	ran, _ := RunExtension("no-such-verb-xyz", nil)
	if ran {
		t.Error("RunExtension() claims to have run a binary that does not exist")
	}
}
