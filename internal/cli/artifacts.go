package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"agentctx/internal/model"
	"agentctx/internal/ui"
)

func artifactsCommand() *cli.Command {
	return &cli.Command{
		Name:  "artifacts",
		Usage: "Inspect project docs, specs, and schemas",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			bundle := q.Artifacts()
			if cmd.Bool("json") {
				return printJSON(bundle)
			}
			printArtifacts(bundle)
			return nil
		},
	}
}

func printArtifacts(bundle model.ArtifactBundle) {
	fmt.Println(ui.Header("Project Artifacts"))

	if bundle.Doc.Exists {
		fmt.Println(ui.StatusSuccess("project doc: " + bundle.Doc.Path))
		if bundle.Doc.Mission != "" {
			fmt.Printf("  mission: %s\n", bundle.Doc.Mission)
		}
		if bundle.Doc.CorePhilosophy != "" {
			fmt.Printf("  philosophy: %s\n", bundle.Doc.CorePhilosophy)
		}
		fmt.Printf("  sections: %d\n", len(bundle.Doc.Sections))
		if ts := bundle.Doc.TechStack; ts != nil {
			printTechStack(ts)
		}
		if b := bundle.Doc.Boundaries; b != nil {
			fmt.Printf("  boundaries: %d always / %d ask / %d never\n",
				len(b.Tier1Always), len(b.Tier2Ask), len(b.Tier3Never))
		}
	} else {
		fmt.Println(ui.StatusMissing("project doc: not found"))
	}

	if bundle.Specs.Exists {
		fmt.Println(ui.StatusSuccess(fmt.Sprintf("specs: %d domain(s)", len(bundle.Specs.Entries))))
		for _, e := range bundle.Specs.Entries {
			marks := ""
			if e.HasBlueprint {
				marks += " [blueprint]"
			}
			if e.HasContract {
				marks += " [contract]"
			}
			fmt.Printf("  %s%s\n", e.Domain, marks)
		}
	} else {
		fmt.Println(ui.StatusMissing("specs: not found"))
	}

	if bundle.Schemas.Exists {
		fmt.Println(ui.StatusSuccess(fmt.Sprintf("schemas: %d file(s)", len(bundle.Schemas.Entries))))
		for _, e := range bundle.Schemas.Entries {
			if e.SchemaID != "" {
				fmt.Printf("  %s (%s)\n", e.Name, e.SchemaID)
			} else {
				fmt.Printf("  %s\n", e.Name)
			}
		}
	} else {
		fmt.Println(ui.StatusMissing("schemas: not found"))
	}

	if !bundle.HasAnyArtifact {
		fmt.Println(ui.Dim("No project artifacts found."))
	}
}

func printTechStack(ts *model.TechStackInfo) {
	if len(ts.Languages) > 0 {
		fmt.Printf("  languages: %v\n", ts.Languages)
	}
	if len(ts.Frameworks) > 0 {
		fmt.Printf("  frameworks: %v\n", ts.Frameworks)
	}
	if ts.PackageManager != "" {
		fmt.Printf("  package manager: %s\n", ts.PackageManager)
	}
}
