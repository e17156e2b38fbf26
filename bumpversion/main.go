//go:build !js
// +build !js

// Command bumpversion increments the version in version.json and patches the
// version marker of the published page.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simukka/pop-bubbles/common"
	"github.com/simukka/pop-bubbles/version"
)

func main() {
	logger := common.NewCLILogger(os.Stderr, "bumpversion", common.GetEnv("POP_LOG_LEVEL", "info"))

	var versionFile, htmlFile string

	cmd := &cobra.Command{
		Use:           "bumpversion [patch|minor|major]",
		Short:         "Increment the Pop! Bubbles version",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			kind, err := version.ParseBumpKind(arg)
			if err != nil {
				return err
			}

			logger.Info("updating version", "kind", kind)

			doc, err := version.Read(versionFile)
			if err != nil {
				return err
			}
			from, to, err := version.Apply(doc, kind, time.Now())
			if err != nil {
				return err
			}
			if err := version.Write(versionFile, doc); err != nil {
				return err
			}
			logger.Info("version file updated", "file", versionFile)

			found, err := version.PatchHTMLFile(htmlFile, to)
			if err != nil {
				return err
			}
			if !found {
				logger.Warn("version marker not found", "file", htmlFile)
			} else {
				logger.Info("page updated", "file", htmlFile)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (build %d, %s)\n", from, to, doc.Build, doc.LastUpdate)
			return nil
		},
	}
	cmd.Flags().StringVar(&versionFile, "file", "version.json", "version document")
	cmd.Flags().StringVar(&htmlFile, "html", "docs/index.html", "page carrying the version marker")

	if err := cmd.Execute(); err != nil {
		logger.Error("version update failed", "err", err)
		os.Exit(1)
	}
}
