package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/spark/pkg/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Validate and export theme files",
	}
	cmd.AddCommand(newThemeValidateCmd(a), newThemeExportCmd(a))
	return cmd
}

func newThemeValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check theme files for unknown or invalid tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				th, err := theme.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(a.stdout, "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(a.stdout, "%s: ok (%s)\n", path, th)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d theme files are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newThemeExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a complete theme file",
		Long: `Write every token of a theme as YAML, as a starting point for a custom
theme. The source is the built-in light theme, the dark one with --dark,
or the configured theme file with every missing token filled in.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bindFlags(cmd, map[string]string{"theme.file": "theme", "theme.dark": "dark"})
		},
		RunE: func(*cobra.Command, []string) error {
			th := theme.Default(brightness(a.v.GetBool("theme.dark")))
			if path := a.v.GetString("theme.file"); path != "" {
				loaded, err := theme.Load(path)
				if err != nil {
					return err
				}
				th = loaded
			}
			if output != "" {
				if err := theme.Save(th, output); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "wrote %s\n", output)
				return nil
			}
			data, err := theme.Export(th)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().Bool("dark", false, "export the dark theme")
	cmd.Flags().String("theme", "", "theme file to complete and export")
	return cmd
}

func brightness(dark bool) theme.Brightness {
	if dark {
		return theme.BrightnessDark
	}
	return theme.BrightnessLight
}
