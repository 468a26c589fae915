package app

import (
	"strings"
	"testing"
)

func TestSummaryCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	data := writeDataset(t, energyCSV)

	out, err := runCmd(t, "summary", "--data", data)
	if err != nil {
		t.Fatalf("renewstat summary failed: %v", err)
	}

	for _, want := range []string{"Norway", "TotalRenewableEnergy", "HydroEnergy", "Correlation Matrix"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q\nGot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Charts written") {
		t.Error("summary command should not render charts")
	}
}

func TestSummaryCommand_NoNumericColumns(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	data := writeDataset(t, "Country,Region\nKenya,Africa\nChile,Americas\n")

	out, err := runCmd(t, "summary", "--data", data)
	if err != nil {
		t.Fatalf("summary should not fail without numeric columns: %v", err)
	}
	if !strings.Contains(out, "No numeric columns.") {
		t.Errorf("expected empty numeric sections\nGot:\n%s", out)
	}
}

func TestSummaryCommand_RejectsArgs(t *testing.T) {
	if _, err := runCmd(t, "summary", "extra"); err == nil {
		t.Error("summary should reject positional arguments")
	}
}
