package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"hiredocs/constants"
	"hiredocs/internal/batch"
)

var (
	batchKind   string
	batchOutDir string
	batchReport string
)

var batchCommand = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process every supported document in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(batchKind)
		if err != nil {
			return err
		}
		jd, err := loadJobDescription()
		if err != nil {
			return err
		}
		cfg, pipe, logger, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()
		if batchOutDir != "" {
			cfg.Intake.OutDir = batchOutDir
		}

		proc := batch.NewProcessor(pipe, cfg, logger)
		summary, err := proc.ProcessDir(cmd.Context(), args[0], kind, jd)
		if err != nil {
			return err
		}

		fmt.Printf("processed %d file(s): %d succeeded, %d failed (%d need OCR)\n",
			summary.Total, summary.Succeeded, summary.Failed, summary.RequiresOCR)
		if summary.RequiresOCR > 0 {
			fmt.Println("some documents appear scanned; install tesseract or easyocr and re-run")
		}
		if summary.Shortlisted > 0 {
			fmt.Printf("shortlisted %d of %d candidate(s)\n", summary.Shortlisted, len(summary.Ranked))
		}

		report := batchReport
		if report == "" {
			report = filepath.Join(cfg.Intake.OutDir, "batch_report.xlsx")
		}
		return proc.WriteReport(report, summary)
	},
}

var watchCommand = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and process documents as they arrive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(batchKind)
		if err != nil {
			return err
		}
		jd, err := loadJobDescription()
		if err != nil {
			return err
		}
		cfg, pipe, logger, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()
		if batchOutDir != "" {
			cfg.Intake.OutDir = batchOutDir
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		proc := batch.NewProcessor(pipe, cfg, logger)
		if err := proc.Watch(ctx, args[0], kind, jd); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{batchCommand, watchCommand} {
		c.Flags().StringVarP(&batchKind, "kind", "k", "resume",
			"document kind: resume | payslip | letter | certificate")
		c.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for per-file JSON records")
		c.Flags().StringVarP(&jobDescription, "job-description", "j", "", "job description for resume fit scoring")
		c.Flags().StringVar(&jobDescFile, "job-description-file", "", "read the job description from a file")
		rootCmd.AddCommand(c)
	}
	batchCommand.Flags().StringVar(&batchReport, "report", "", "XLSX report path (default <out-dir>/batch_report.xlsx)")
}

func parseKind(s string) (constants.DocumentKind, error) {
	switch s {
	case "resume":
		return constants.KindResume, nil
	case "payslip":
		return constants.KindPayslip, nil
	case "letter", "experience-letter":
		return constants.KindExperienceLetter, nil
	case "certificate":
		return constants.KindCertificate, nil
	default:
		return "", fmt.Errorf("unknown document kind %q", s)
	}
}
