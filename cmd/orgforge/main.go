// orgforge renders a wizard answer file into a deployment blueprint.
//
// The input is a JSONC document naming a template, the organization
// metadata, discovery answers and optional overrides. orgforge replays
// it through the configuration core exactly the way the interactive
// wizard would, validates the result, and prints the blueprint as JSON
// or as hex of the deterministic binary encoding.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"orgforge/deployer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// wizardInput is the answer-file schema. Every section is optional; an
// empty document produces the default single-role state.
type wizardInput struct {
	Template string `json:"template"`
	Org      struct {
		Name             string             `json:"name"`
		Description      string             `json:"description"`
		LogoCID          string             `json:"logoCID"`
		InfoCID          string             `json:"infoCID"`
		DeployerUsername string             `json:"deployerUsername"`
		AutoUpgrade      bool               `json:"autoUpgrade"`
		Links            []deployer.OrgLink `json:"links"`
	} `json:"org"`
	Answers       map[string]string `json:"answers"`
	Assessment    map[string]string `json:"assessment"`
	Slider        *int              `json:"slider"`
	OverrideHints bool              `json:"overrideHints"`
}

func run() error {
	var (
		inputPath    string
		registryAddr string
		deployerAddr string
		outFormat    string
		validateOnly bool
		verbose      bool
	)

	flags := pflag.NewFlagSet("orgforge", pflag.ContinueOnError)
	flags.StringVar(&inputPath, "input", "", "wizard answer file (JSONC)")
	flags.StringVar(&registryAddr, "registry", "", "registry contract address (required unless --validate-only)")
	flags.StringVar(&deployerAddr, "deployer", "", "deployer wallet address (required unless --validate-only)")
	flags.StringVar(&outFormat, "out", "json", "output format: json or binary-hex")
	flags.BoolVar(&validateOnly, "validate-only", false, "stop after validation, print the report")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log reducer warnings to stderr")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if inputPath == "" {
		return fmt.Errorf("--input is required")
	}
	if outFormat != "json" && outFormat != "binary-hex" {
		return fmt.Errorf("unknown output format %q: want json or binary-hex", outFormat)
	}

	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		deployer.SetLogger(log)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	in, err := deployer.FromJSON[wizardInput](string(jsonc.ToJSON(raw)), "wizard input")
	if err != nil {
		return err
	}

	s := buildState(*in)

	report := deployer.Validate(s)
	if validateOnly {
		return printReport(report)
	}
	if !report.OK {
		if perr := printReport(report); perr != nil {
			return perr
		}
		return fmt.Errorf("state failed validation with %d error(s)", len(report.Errors))
	}

	plan, errs := deployer.BuildPlan(s, deployerAddr, registryAddr)
	if len(errs) > 0 {
		return printReport(deployer.Report{Errors: errs})
	}

	if outFormat == "binary-hex" {
		fmt.Println(hex.EncodeToString(deployer.EncodeBlueprint(&plan.Blueprint)))
		return nil
	}
	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// buildState replays the answer file through the reducer in wizard order:
// template, org metadata, discovery journey, philosophy override.
func buildState(in wizardInput) deployer.State {
	s := deployer.NewState()

	if in.Template != "" {
		s = deployer.Reduce(s, deployer.SelectTemplate{ID: in.Template})
	}
	s = deployer.Reduce(s, deployer.SetOrgName{Name: in.Org.Name})
	s = deployer.Reduce(s, deployer.SetOrgDescription{Description: in.Org.Description})
	if in.Org.LogoCID != "" {
		s = deployer.Reduce(s, deployer.SetLogo{CID: in.Org.LogoCID})
	}
	if in.Org.InfoCID != "" {
		s = deployer.Reduce(s, deployer.SetInfoHash{CID: in.Org.InfoCID})
	}
	s = deployer.Reduce(s, deployer.SetDeployerUsername{Username: in.Org.DeployerUsername})
	s = deployer.Reduce(s, deployer.SetAutoUpgrade{Enabled: in.Org.AutoUpgrade})
	for _, l := range in.Org.Links {
		s = deployer.Reduce(s, deployer.AddLink{Label: l.Label, URL: l.URL})
	}

	if len(in.Answers) > 0 {
		s = deployer.RunJourney(s, in.Answers)
	}
	for q, v := range in.Assessment {
		s = deployer.Reduce(s, deployer.SetSelfAssessmentAnswer{QuestionID: q, Value: v})
	}
	if in.Slider != nil {
		s = deployer.Reduce(s, deployer.ApplyPhilosophy{Slider: *in.Slider, OverrideHints: in.OverrideHints})
	}
	return s
}

// printReport writes the validation report as JSON. A failing report makes
// the process exit nonzero through the returned error.
func printReport(r deployer.Report) error {
	type line struct {
		Kind string `json:"kind"`
		Msg  string `json:"msg"`
		Role *int   `json:"role,omitempty"`
	}
	doc := struct {
		OK     bool   `json:"ok"`
		Errors []line `json:"errors"`
	}{OK: len(r.Errors) == 0, Errors: []line{}}
	for _, e := range r.Errors {
		l := line{Kind: string(e.Kind), Msg: e.Msg}
		if e.Role >= 0 {
			role := e.Role
			l.Role = &role
		}
		doc.Errors = append(doc.Errors, l)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !doc.OK {
		return fmt.Errorf("validation failed with %d error(s)", len(doc.Errors))
	}
	return nil
}
