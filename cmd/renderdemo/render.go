package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

var (
	renderInput      string
	renderOutDir     string
	renderChromePath string
	renderTimeout    time.Duration
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Write the plain-text export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := loadResume(renderInput)
		if err != nil {
			return err
		}
		art := render.NewExporter(nil).Text(data)
		return writeArtifact(cmd, art.FileName, art.Body)
	},
}

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Write the standalone HTML page that is rasterized for downloads",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := loadResume(renderInput)
		if err != nil {
			return err
		}
		page, err := render.Page(data)
		if err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		return writeArtifact(cmd, render.BaseName(data.FullName)+".html", page)
	},
}

var pngCmd = &cobra.Command{
	Use:   "png",
	Short: "Rasterize the resume with headless Chrome",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := loadResume(renderInput)
		if err != nil {
			return err
		}
		exp := render.NewExporter(render.NewChromeRasterizer(renderChromePath))
		exp.Options.Timeout = renderTimeout

		ctx, cancel := context.WithTimeout(cmd.Context(), renderTimeout+5*time.Second)
		defer cancel()
		art, fb, err := exp.Image(ctx, data)
		if err != nil {
			return fmt.Errorf("%s: %w", fb.Description, err)
		}
		return writeArtifact(cmd, art.FileName, art.Body)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&renderInput, "in", "i", "", "Path to a resume JSON file (defaults to a built-in sample)")
	rootCmd.PersistentFlags().StringVarP(&renderOutDir, "out", "o", "./out", "Output directory")
	pngCmd.Flags().StringVar(&renderChromePath, "chrome", os.Getenv("CHROME_PATH"), "Path to the Chrome executable")
	pngCmd.Flags().DurationVar(&renderTimeout, "timeout", 30*time.Second, "Rasterization timeout")

	rootCmd.AddCommand(textCmd, htmlCmd, pngCmd)
}

func loadResume(path string) (model.ResumeData, error) {
	if path == "" {
		return sampleResume(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeData{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	var data model.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return model.ResumeData{}, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return data.Normalize(), nil
}

func writeArtifact(cmd *cobra.Command, name string, body []byte) error {
	if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(renderOutDir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return err
	}
	cmd.Printf("OK: wrote %s\n", path)
	return nil
}

func sampleResume() model.ResumeData {
	return model.ResumeData{
		FullName: "Jordan Lee",
		Email:    "jordan.lee@example.com",
		Phone:    "+1-555-0102",
		Address:  "Austin, TX",
		Summary:  "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Education: []model.Education{
			{Degree: "B.Sc. Computer Science", Institution: "University of Texas", GraduationDate: "May 2015"},
		},
		Experience: []model.WorkExperience{
			{
				JobTitle:         "Senior Backend Engineer",
				Company:          "Acme Logistics",
				StartDate:        "Apr 2021",
				EndDate:          "Present",
				Responsibilities: "Designed a routing service that reduced shipment latency by 18%.",
			},
			{
				JobTitle:         "Backend Engineer",
				Company:          "Blue Harbor Systems",
				StartDate:        "Jan 2018",
				EndDate:          "Mar 2021",
				Responsibilities: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
		Skills:         "Go, PostgreSQL, Docker, Kubernetes",
		Certifications: "AWS Certified Solutions Architect",
	}
}
