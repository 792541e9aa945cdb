package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiredocs/internal/assemble"
)

var (
	processOut     string
	jobDescription string
	jobDescFile    string
)

var resumeCommand = &cobra.Command{
	Use:   "resume <file>",
	Short: "Extract entities and optional fit scores from a resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jd, err := loadJobDescription()
		if err != nil {
			return err
		}
		_, pipe, _, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()

		rec := pipe.ProcessResume(cmd.Context(), args[0], jd)
		return emit(pipe.Assembler(), assemble.KindResume, rec)
	},
}

var payslipCommand = &cobra.Command{
	Use:   "payslip <file>",
	Short: "Extract salary components and employment proof from a payslip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pipe, _, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()

		rec := pipe.ProcessPayslip(cmd.Context(), args[0])
		return emit(pipe.Assembler(), assemble.KindPayslip, rec)
	},
}

var letterCommand = &cobra.Command{
	Use:   "letter <file>",
	Short: "Extract employment facts and consistency checks from an experience letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pipe, _, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()

		rec := pipe.ProcessExperienceLetter(cmd.Context(), args[0])
		return emit(pipe.Assembler(), assemble.KindExperienceLetter, rec)
	},
}

var certificateCommand = &cobra.Command{
	Use:   "certificate <file>",
	Short: "Extract credential fields and authenticity analysis from a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pipe, _, err := setup()
		if err != nil {
			return err
		}
		defer pipe.Close()

		rec := pipe.ProcessCertificate(cmd.Context(), args[0])
		return emit(pipe.Assembler(), assemble.KindCertificate, rec)
	},
}

func init() {
	resumeCommand.Flags().StringVarP(&jobDescription, "job-description", "j", "", "job description text for fit scoring")
	resumeCommand.Flags().StringVar(&jobDescFile, "job-description-file", "", "read the job description from a file")

	for _, c := range []*cobra.Command{resumeCommand, payslipCommand, letterCommand, certificateCommand} {
		c.Flags().StringVarP(&processOut, "out", "o", "", "write the record to a file instead of stdout")
		rootCmd.AddCommand(c)
	}
}

func loadJobDescription() (string, error) {
	if jobDescFile == "" {
		return jobDescription, nil
	}
	if jobDescription != "" {
		return "", fmt.Errorf("--job-description and --job-description-file are mutually exclusive")
	}
	data, err := os.ReadFile(jobDescFile)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return string(data), nil
}

// emit writes the finalized record to --out or stdout.
func emit(assembler *assemble.Assembler, kind assemble.Kind, record any) error {
	if processOut != "" {
		return assembler.WriteFile(processOut, kind, record)
	}
	data, err := assembler.Finalize(kind, record)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
