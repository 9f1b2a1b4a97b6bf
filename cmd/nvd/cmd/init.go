package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/config"
	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Scaffold nvdialog.yaml in the current project",
		Long: `Create an nvdialog.yaml configuration file in the current Go
project. The project root is located by walking up to the nearest
go.mod.

The application name defaults to the last element of the module path.
Pass a name to override it:

  nvd init
  nvd init "Photo Box"`,
		Usage: "nvd init [app-name]",
		Run:   runInit,
	})
}

// initTemplateData contains the data for nvdialog.yaml substitution.
type initTemplateData struct {
	AppName        string
	LibraryVersion string
}

func runInit(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("init takes at most one app-name argument")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("%w\n\nRun nvd init inside a Go project", err)
	}

	path := filepath.Join(root, "nvdialog.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	// Resolve defaults the same way the other commands will read them back.
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	appName := cfg.AppName
	if len(args) == 1 {
		appName = strings.TrimSpace(args[0])
		if appName == "" {
			return fmt.Errorf("app name cannot be empty")
		}
	}

	content, err := templates.Render("init/nvdialog.yaml.tmpl", initTemplateData{
		AppName:        appName,
		LibraryVersion: "latest",
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write nvdialog.yaml: %w", err)
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  nvd fetch       Download the native library")
	fmt.Println("  nvd demo info   Verify dialogs work on this machine")

	return nil
}
