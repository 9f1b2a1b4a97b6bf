package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/ebitengine/purego"
)

// EnvLibrary names the environment variable that pins the shared library
// path, bypassing the search below.
const EnvLibrary = "NVDIALOG_LIBRARY"

// Load locates libnvdialog and registers its entry points. It is a no-op if
// a table is already active (including an installed stub).
func Load() error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}

	var firstErr error
	for _, candidate := range candidates() {
		t, err := open(candidate)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		active = t
		return nil
	}
	return fmt.Errorf("ffi: libnvdialog not found: %w", firstErr)
}

// LoadFrom loads the shared library at the given path, replacing any active
// table.
func LoadFrom(path string) error {
	t, err := open(path)
	if err != nil {
		return err
	}
	mu.Lock()
	active = t
	mu.Unlock()
	return nil
}

// candidates returns library paths to try, most specific first: the
// NVDIALOG_LIBRARY override, libraries fetched into the nvd cache (newest
// version first), then the bare soname resolved by the system loader.
func candidates() []string {
	var paths []string
	if p := os.Getenv(EnvLibrary); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, cachedLibraries()...)
	return append(paths, libraryName)
}

// cachedLibraries lists libraries unpacked by "nvd fetch" under
// <cache>/lib/<version>/<os>/<arch>/, newest version first.
func cachedLibraries() []string {
	root := os.Getenv("NVDIALOG_CACHE_DIR")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		root = filepath.Join(home, ".nvdialog")
	}
	libRoot := filepath.Join(root, "lib")
	entries, err := os.ReadDir(libRoot)
	if err != nil {
		return nil
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	// Lexicographic descending is close enough here; the fetch CLI applies
	// real semver ordering when it resolves versions.
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))

	var paths []string
	for _, v := range versions {
		p := filepath.Join(libRoot, v, runtime.GOOS, runtime.GOARCH, libraryName)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

// open loads the shared object at path and resolves every entry point.
// purego reports a missing symbol by panicking, which is converted into an
// error so a stale or truncated library fails the load rather than the
// first dialog call.
func open(path string) (t *Table, err error) {
	handle, dlErr := dlopen(path)
	if dlErr != nil {
		return nil, fmt.Errorf("ffi: open %s: %w", path, dlErr)
	}
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("ffi: resolve symbols in %s: %v", path, r)
		}
	}()

	t = &Table{}
	for _, sym := range []struct {
		name string
		fptr any
	}{
		{"nvd_init", &t.Init},
		{"nvd_set_application_name", &t.SetApplicationName},
		{"nvd_get_application_name", &t.GetApplicationName},
		{"nvd_get_error", &t.GetError},
		{"nvd_set_error", &t.SetError},
		{"nvd_dialog_box_new", &t.DialogBoxNew},
		{"nvd_show_dialog", &t.ShowDialog},
		{"nvd_dialog_box_set_accept_text", &t.DialogBoxSetAcceptText},
		{"nvd_free_object", &t.FreeObject},
		{"nvd_dialog_question_new", &t.DialogQuestionNew},
		{"nvd_get_reply", &t.GetReply},
		{"nvd_open_file_dialog_new", &t.OpenFileDialogNew},
		{"nvd_save_file_dialog_new", &t.SaveFileDialogNew},
		{"nvd_get_file_location", &t.GetFileLocation},
		{"nvd_notification_new", &t.NotificationNew},
		{"nvd_send_notification", &t.SendNotification},
		{"nvd_delete_notification", &t.DeleteNotification},
		{"nvd_add_notification_action", &t.AddNotificationAction},
		{"nvd_about_dialog_new", &t.AboutDialogNew},
		{"nvd_show_about_dialog", &t.ShowAboutDialog},
		{"nvd_dialog_set_icon", &t.DialogSetIcon},
		{"nvd_input_box_new", &t.InputBoxNew},
		{"nvd_show_input_box", &t.ShowInputBox},
		{"nvd_input_box_get_string", &t.InputBoxGetString},
		{"nvd_string_new", &t.StringNew},
		{"nvd_string_to_cstr", &t.StringToCStr},
		{"nvd_duplicate_string", &t.DuplicateString},
		{"nvd_delete_string", &t.DeleteString},
		{"nvd_image_from_filename", &t.ImageFromFilename},
		{"nvd_create_image", &t.CreateImage},
		{"nvd_destroy_image", &t.DestroyImage},
	} {
		purego.RegisterLibFunc(sym.fptr, handle, sym.name)
	}
	return t, nil
}
