package cmd

import (
	"fmt"
	"os"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/config"
	"github.com/go-nvdialog/nvdialog/pkg/ffi"
	"github.com/go-nvdialog/nvdialog/pkg/nvdialog"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Open a native dialog to verify the setup",
		Long: `Open a native dialog to verify that the NvDialog library loads
and renders on this machine.

Kinds:
  info        Plain message box (the default)
  warning     Warning message box
  error       Error message box
  question    Yes/No/Cancel question, prints the reply
  open        File open dialog, prints the chosen path
  save        File save dialog, prints the chosen path
  input       Text input box, prints the entered text
  notify      Desktop notification
  about       About dialog with the project's app name`,
		Usage: "nvd demo [kind]",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("demo takes at most one kind argument\n\nUsage: nvd demo [kind]")
	}
	kind := "info"
	if len(args) == 1 {
		kind = args[0]
	}

	appName := applyProjectConfig()

	if err := nvdialog.Init(); err != nil {
		return fmt.Errorf("failed to initialize NvDialog: %w\n\nRun \"nvd fetch\" to download the native library", err)
	}
	nvdialog.SetAppName(appName)

	switch kind {
	case "info":
		return showMessage(nvdialog.DialogSimple, "Hello", "NvDialog is working.")
	case "warning":
		return showMessage(nvdialog.DialogWarning, "Careful", "This is a warning dialog.")
	case "error":
		return showMessage(nvdialog.DialogError, "Oops", "This is an error dialog.")
	case "question":
		return demoQuestion()
	case "open":
		return demoOpen()
	case "save":
		return demoSave()
	case "input":
		return demoInput()
	case "notify":
		return demoNotify()
	case "about":
		return demoAbout(appName)
	default:
		return fmt.Errorf("unknown demo kind %q", kind)
	}
}

// applyProjectConfig reads nvdialog.yaml from the surrounding project, if
// any. It returns the app name to use and points the library loader at
// library.path by setting NVDIALOG_LIBRARY. An override already present in
// the environment wins over the config file.
func applyProjectConfig() string {
	appName := "nvd demo"
	root, err := config.FindProjectRoot()
	if err != nil {
		return appName
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return appName
	}
	appName = cfg.AppName
	if cfg.LibraryPath != "" && os.Getenv(ffi.EnvLibrary) == "" {
		os.Setenv(ffi.EnvLibrary, cfg.LibraryPath)
	}
	return appName
}

func showMessage(kind nvdialog.DialogType, title, message string) error {
	dlg, err := nvdialog.NewDialogBox(title, message, kind)
	if err != nil {
		return err
	}
	defer dlg.Close()
	return dlg.Show()
}

func demoQuestion() error {
	dlg, err := nvdialog.NewQuestionDialog("Question", "Is the dialog readable?", nvdialog.ButtonsYesNoCancel)
	if err != nil {
		return err
	}
	defer dlg.Close()

	reply, err := dlg.Reply()
	if err != nil {
		return err
	}
	fmt.Printf("Reply: %s\n", reply)
	return nil
}

func demoOpen() error {
	dlg, err := nvdialog.NewOpenFileDialog("Pick a file", nil)
	if err != nil {
		return err
	}
	defer dlg.Close()

	if path, ok := dlg.Filename(); ok {
		fmt.Printf("Selected: %s\n", path)
	} else {
		fmt.Println("No file selected.")
	}
	return nil
}

func demoSave() error {
	dlg, err := nvdialog.NewSaveFileDialog("Save as", "demo.txt")
	if err != nil {
		return err
	}
	defer dlg.Close()

	if path, ok := dlg.Filename(); ok {
		fmt.Printf("Saving to: %s\n", path)
	} else {
		fmt.Println("Cancelled.")
	}
	return nil
}

func demoInput() error {
	box, err := nvdialog.NewInputBox("Input", "Type something:")
	if err != nil {
		return err
	}
	defer box.Close()

	if err := box.Show(); err != nil {
		return err
	}
	if text, ok := box.Input(); ok {
		fmt.Printf("You typed: %s\n", text)
	} else {
		fmt.Println("Nothing entered.")
	}
	return nil
}

func demoNotify() error {
	n, err := nvdialog.NewNotification("nvd", "Notifications are working.", nvdialog.NotificationSimple)
	if err != nil {
		return err
	}
	defer n.Close()
	return n.Send()
}

func demoAbout(appName string) error {
	dlg, err := nvdialog.NewAboutDialog(nvdialog.AboutOptions{
		Name:        appName,
		Description: "Native dialogs for Go via the NvDialog library.",
	})
	if err != nil {
		return err
	}
	defer dlg.Close()
	return dlg.Show()
}
