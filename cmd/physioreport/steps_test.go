package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// testContext holds state for a single scenario
type testContext struct {
	tmpDir   string
	exitCode int
	output   string
	env      map[string]*string
}

func TestFeatures(t *testing.T) {
	t.Setenv("PHYSIO_LOG_LEVEL", "error")

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "physioreport-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir
		tc.env = map[string]*string{}
		return ctx, nil
	})

	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		for k, v := range tc.env {
			if v == nil {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, *v)
			}
		}
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	sc.Step(`^the environment variable "([^"]*)" is "([^"]*)"$`, tc.theEnvironmentVariableIs)
	sc.Step(`^a file "([^"]*)" containing "([^"]*)"$`, tc.aFileContaining)
	sc.Step(`^I run physioreport with "([^"]*)"$`, tc.iRunPhysioreportWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
	sc.Step(`^"([^"]*)" should contain "([^"]*)"$`, tc.fileShouldContain)
	sc.Step(`^"([^"]*)" should be a DICOM file for patient "([^"]*)"$`, tc.shouldBeDICOMForPatient)
}

func (tc *testContext) path(p string) string {
	return strings.ReplaceAll(p, "{tmpdir}", tc.tmpDir)
}

func (tc *testContext) theEnvironmentVariableIs(name, value string) error {
	if _, seen := tc.env[name]; !seen {
		if old, ok := os.LookupEnv(name); ok {
			tc.env[name] = &old
		} else {
			tc.env[name] = nil
		}
	}
	return os.Setenv(name, value)
}

func (tc *testContext) aFileContaining(path, content string) error {
	return os.WriteFile(tc.path(path), []byte(content), 0644)
}

// iRunPhysioreportWith runs the CLI in-process with stdout and stderr
// captured together.
func (tc *testContext) iRunPhysioreportWith(args string) error {
	var output bytes.Buffer
	tc.exitCode = run(strings.Fields(tc.path(args)), &output, &output)
	tc.output = output.String()
	return nil
}

func (tc *testContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nOutput:\n%s", expected, tc.exitCode, tc.output)
	}
	return nil
}

func (tc *testContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.output, expected) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.output)
	}
	return nil
}

func (tc *testContext) shouldExist(path string) error {
	if _, err := os.Stat(tc.path(path)); err != nil {
		return fmt.Errorf("%s does not exist: %w", path, err)
	}
	return nil
}

func (tc *testContext) fileShouldContain(path, expected string) error {
	data, err := os.ReadFile(tc.path(path))
	if err != nil {
		return err
	}
	if !strings.Contains(string(data), expected) {
		return fmt.Errorf("%s does not contain %q:\n%s", path, expected, data)
	}
	return nil
}

func (tc *testContext) shouldBeDICOMForPatient(path, patient string) error {
	ds, err := dicom.ParseFile(tc.path(path), nil)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	elem, err := ds.FindElementByTag(tag.PatientName)
	if err != nil {
		return fmt.Errorf("PatientName missing: %w", err)
	}
	if got := elem.Value.String(); !strings.Contains(got, patient) {
		return fmt.Errorf("expected patient %q, got %s", patient, got)
	}
	return nil
}
