package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/protocolfile"
	"github.com/heartmarshall/inkblot-backend/internal/report"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// errInvalidProtocol makes the command exit non-zero after the problems
// have already been printed.
var errInvalidProtocol = errors.New("protocol has errors")

// issue is one problem found in a protocol file.
type issue struct {
	Index    int
	Field    string
	Message  string
	Blocking bool
}

// checkResponses normalizes every response and collects symbol errors and
// Z advisories, mirroring what the server does on submission.
func checkResponses(in []domain.Response) (out []domain.Response, issues []issue, corrected int) {
	out = make([]domain.Response, len(in))
	for i, raw := range in {
		r, fixed := scoring.NormalizeResponse(raw)
		if fixed {
			corrected++
		}
		for _, fe := range scoring.ValidateResponse(r) {
			issues = append(issues, issue{Index: i, Field: fe.Field, Message: fe.Message, Blocking: true})
		}
		for _, adv := range scoring.CheckZ(r.Card, r.Location, r.DevQual, r.Z) {
			issues = append(issues, issue{Index: i, Field: adv.Field, Message: adv.Message, Blocking: adv.Blocking()})
		}
		out[i] = r
	}
	return out, issues, corrected
}

func printIssues(w io.Writer, issues []issue) (blocking int) {
	for _, is := range issues {
		level := "warning"
		if is.Blocking {
			level = "error"
			blocking++
		}
		fmt.Fprintf(w, "%s: responses[%d].%s: %s\n", level, is.Index, is.Field, is.Message)
	}
	return blocking
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check every coded symbol of a protocol file",
		Example: `  scorectl validate protocol.yaml`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := protocolfile.Load(args[0])
			if err != nil {
				return err
			}
			_, issues, corrected := checkResponses(f.DomainResponses())
			out := cmd.OutOrStdout()
			blocking := printIssues(out, issues)

			if missing := scoring.MissingCards(cardsOf(f.DomainResponses())); len(missing) > 0 {
				fmt.Fprintf(out, "warning: protocol has no responses for cards %s\n", strings.Join(missing, ", "))
			}
			fmt.Fprintf(out, "%d responses, %d corrected, %d errors\n", len(f.Responses), corrected, blocking)
			if blocking > 0 {
				return errInvalidProtocol
			}
			return nil
		},
	}
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print a protocol file with symbols rewritten to canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := protocolfile.Load(args[0])
			if err != nil {
				return err
			}
			rs, _, _ := checkResponses(f.DomainResponses())
			norm := protocolfile.FromDomain(domain.Subject{}, rs)
			norm.Subject = f.Subject
			return protocolfile.Encode(cmd.OutOrStdout(), norm)
		},
	}
}

func newScoreCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Compute the structural summary of a protocol file",
		Example: `  # Print the summary sheets
  scorectl score protocol.yaml

  # Emit the flat field map as JSON
  scorectl score protocol.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := protocolfile.Load(args[0])
			if err != nil {
				return err
			}
			age, err := f.Subject.ResolveAge()
			if err != nil {
				return err
			}

			rs, issues, _ := checkResponses(f.DomainResponses())
			if printIssues(cmd.ErrOrStderr(), issues) > 0 {
				return errInvalidProtocol
			}
			if missing := scoring.MissingCards(cardsOf(rs)); len(missing) > 0 {
				return &domain.IncompleteProtocolError{Missing: missing}
			}

			res := scoring.Compute(rs, age)
			return writeSummary(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	return cmd
}

func writeSummary(w io.Writer, format string, res scoring.Result) error {
	switch format {
	case "table":
		r := report.Project(res.Summary)
		r.Responses = report.Listing(res.Responses)
		return report.WriteTable(w, r)
	case "json":
		fields, err := report.Fields(res.Summary)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func cardsOf(rs []domain.Response) []string {
	cards := make([]string, len(rs))
	for i, r := range rs {
		cards[i] = r.Card
	}
	return cards
}
