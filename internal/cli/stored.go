package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/inkblot-backend/internal/protocolfile"
	"github.com/heartmarshall/inkblot-backend/internal/service/protocol"
	"github.com/heartmarshall/inkblot-backend/internal/service/subject"
)

const dateLayout = "2006-01-02"

func newImportCmd(open servicesOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Register the file's subject and store its responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := protocolfile.Load(args[0])
			if err != nil {
				return err
			}
			birth, err := time.Parse(dateLayout, f.Subject.Birthdate)
			if err != nil {
				return fmt.Errorf("birthdate: %w", err)
			}
			test, err := time.Parse(dateLayout, f.Subject.TestDate)
			if err != nil {
				return fmt.Errorf("test_date: %w", err)
			}

			svc, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			gender := f.Subject.Gender
			if gender == "" {
				gender = "O"
			}
			subj, err := svc.Subjects.Create(cmd.Context(), subject.CreateInput{
				Name:      f.Subject.Name,
				Gender:    gender,
				Birthdate: birth,
				TestDate:  test,
				Consent:   true,
			})
			if err != nil {
				return err
			}

			res, err := svc.Protocol.SubmitResponses(cmd.Context(), protocol.SubmitInput{
				SubjectID: subj.ID,
				Responses: f.DomainResponses(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subject %s: %d responses stored\n", subj.ID, len(res.Responses))
			if len(res.Missing) > 0 {
				fmt.Fprintf(out, "summary not computed, missing cards %s\n", strings.Join(res.Missing, ", "))
			}
			if res.ScoringError != "" {
				return fmt.Errorf("responses stored, scoring failed (run rescore): %s", res.ScoringError)
			}
			return nil
		},
	}
}

func newExportCmd(open servicesOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "export <subject-id>",
		Short: "Write a stored protocol as a YAML protocol file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("subject id: %w", err)
			}

			svc, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			subj, err := svc.Subjects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			rs, err := svc.Protocol.ListResponses(cmd.Context(), id)
			if err != nil {
				return err
			}
			return protocolfile.Encode(cmd.OutOrStdout(), protocolfile.FromDomain(*subj, rs))
		},
	}
}

func newRescoreCmd(open servicesOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "rescore",
		Short: "Recompute the stored summary of every subject",
		Long: `rescore recomputes and stores the structural summary of every subject,
for example after a change to the scoring tables. Subjects with incomplete
protocols are counted and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Protocol.RescoreAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scored %d, incomplete %d, failed %d\n", res.Scored, res.Incomplete, res.Failed)
			if res.Failed > 0 {
				return fmt.Errorf("%d subjects failed to rescore", res.Failed)
			}
			return nil
		},
	}
}
