package ffi

// Stub is an in-process stand-in for libnvdialog. Every entry point is
// implemented against plain Go state, and handle allocations and frees are
// counted so tests can assert the exactly-once release discipline.
type Stub struct {
	// InitResult is the status nvd_init reports.
	InitResult int32
	// CreateError, when nonzero, makes every constructor return a NULL
	// handle after recording the code as the library error.
	CreateError int32
	// ReplyResult is the raw value nvd_get_reply reports.
	ReplyResult int32
	// Location is the path nvd_get_file_location writes when HasLocation
	// is set; without it the out slot receives NULL ("no selection").
	Location    string
	HasLocation bool
	// Input is the text the input box captures when HasInput is set.
	Input    string
	HasInput bool

	InitCalls int
	ShowCalls int
	SendCalls int

	lastError int32
	appName   string

	next     uintptr
	objects  map[uintptr]*stubObject
	strings  map[uintptr]string
	created  int
	freed    int
	badFrees int
	strFreed int
	actions  []StubAction
	buffers  [][]byte
}

type stubObject struct {
	kind    string
	title   string
	message string
	variant int32
	accept  string
	icon    uintptr
}

// StubAction records a notification action registered with the stub.
type StubAction struct {
	Notification uintptr
	Name         string
	Value        int32
	out          *int32
}

// NewStub returns a stub with the native defaults: initialization succeeds
// and the application name carries the library's non-empty placeholder.
func NewStub() *Stub {
	return &Stub{
		appName: "NvDialog Application",
		objects: make(map[uintptr]*stubObject),
		strings: make(map[uintptr]string),
	}
}

// InstallStub activates s as the native layer. The cleanup argument should
// be testing.T.Cleanup or equivalent; it registers a teardown that restores
// the unloaded state.
//
//	stub := ffi.NewStub()
//	ffi.InstallStub(stub, t.Cleanup)
func InstallStub(s *Stub, cleanup func(func())) {
	Install(s.Table())
	cleanup(Reset)
}

// Created returns how many handles the stub has allocated.
func (s *Stub) Created() int { return s.created }

// Freed returns how many handles have been released.
func (s *Stub) Freed() int { return s.freed }

// BadFrees returns how many frees targeted an unknown or already-freed
// handle. Any nonzero value is a double-free or wild-free bug.
func (s *Stub) BadFrees() int { return s.badFrees }

// Live returns the number of allocated handles not yet freed.
func (s *Stub) Live() int { return len(s.objects) }

// LiveStrings returns the number of dynamic strings not yet freed.
func (s *Stub) LiveStrings() int { return len(s.strings) }

// StringsFreed returns how many dynamic strings have been released.
func (s *Stub) StringsFreed() int { return s.strFreed }

// AppName returns the application name the native layer currently holds.
func (s *Stub) AppName() string { return s.appName }

// LastError returns the error code the stub recorded last.
func (s *Stub) LastError() int32 { return s.lastError }

// Actions returns the notification actions registered so far.
func (s *Stub) Actions() []StubAction { return s.actions }

// FireAction simulates the user activating the named notification action:
// the bound value is written into the caller-owned slot. It reports whether
// a matching action was registered.
func (s *Stub) FireAction(name string) bool {
	for _, a := range s.actions {
		if a.Name == name {
			*a.out = a.Value
			return true
		}
	}
	return false
}

// Object returns the recorded state of a live handle, for assertions on
// what reached the native side.
func (s *Stub) Object(h uintptr) (kind, title, message string, variant int32, ok bool) {
	o, exists := s.objects[h]
	if !exists {
		return "", "", "", 0, false
	}
	return o.kind, o.title, o.message, o.variant, true
}

// AcceptText returns the accept-button label recorded for a live handle.
func (s *Stub) AcceptText(h uintptr) string {
	if o, ok := s.objects[h]; ok {
		return o.accept
	}
	return ""
}

// Icon returns the image handle attached to a live dialog, or zero.
func (s *Stub) Icon(h uintptr) uintptr {
	if o, ok := s.objects[h]; ok {
		return o.icon
	}
	return 0
}

// Table produces the entry-point table backed by this stub.
func (s *Stub) Table() *Table {
	return &Table{
		Init:               s.init,
		SetApplicationName: func(name *byte) { s.appName = GoString(name) },
		GetApplicationName: func() *byte { return s.cbytes(s.appName) },
		GetError:           func() int32 { return s.lastError },
		SetError:           func(code int32) { s.lastError = code },

		DialogBoxNew: func(title, message *byte, kind int32) uintptr {
			return s.alloc("dialog", title, message, kind)
		},
		ShowDialog: func(uintptr) { s.ShowCalls++ },
		DialogBoxSetAcceptText: func(dialog uintptr, label *byte) {
			if o, ok := s.objects[dialog]; ok {
				o.accept = GoString(label)
			}
		},
		FreeObject: s.free,

		DialogQuestionNew: func(title, message *byte, buttons int32) uintptr {
			return s.alloc("question", title, message, buttons)
		},
		GetReply: func(uintptr) int32 { return s.ReplyResult },

		OpenFileDialogNew: func(title, extensions *byte) uintptr {
			return s.alloc("file", title, nil, 0)
		},
		SaveFileDialogNew: func(title, defaultName *byte) uintptr {
			h := s.alloc("file", title, defaultName, 0)
			return h
		},
		GetFileLocation: func(dialog uintptr, out **byte) {
			if s.HasLocation {
				*out = s.cbytes(s.Location)
			} else {
				*out = nil
			}
		},

		NotificationNew: func(title, message *byte, kind int32) uintptr {
			return s.alloc("notification", title, message, kind)
		},
		SendNotification:   func(uintptr) { s.SendCalls++ },
		DeleteNotification: s.free,
		AddNotificationAction: func(notification uintptr, action *byte, value int32, out *int32) {
			s.actions = append(s.actions, StubAction{
				Notification: notification,
				Name:         GoString(action),
				Value:        value,
				out:          out,
			})
		},

		AboutDialogNew: func(name, description, logoPath *byte) uintptr {
			return s.alloc("about", name, description, 0)
		},
		ShowAboutDialog: func(uintptr) { s.ShowCalls++ },
		DialogSetIcon: func(dialog uintptr, image uintptr) {
			if o, ok := s.objects[dialog]; ok {
				o.icon = image
			}
		},

		InputBoxNew: func(title, prompt *byte) uintptr {
			return s.alloc("input", title, prompt, 0)
		},
		ShowInputBox: func(uintptr) { s.ShowCalls++ },
		InputBoxGetString: func(uintptr) uintptr {
			if !s.HasInput {
				return 0
			}
			return s.newString(s.Input)
		},

		StringNew: func(data *byte) uintptr {
			return s.newString(GoString(data))
		},
		StringToCStr: func(h uintptr) *byte {
			str, ok := s.strings[h]
			if !ok {
				return nil
			}
			return s.cbytes(str)
		},
		DuplicateString: func(h uintptr) uintptr {
			str, ok := s.strings[h]
			if !ok {
				return 0
			}
			return s.newString(str)
		},
		DeleteString: func(h uintptr) {
			if _, ok := s.strings[h]; !ok {
				s.badFrees++
				return
			}
			delete(s.strings, h)
			s.strFreed++
		},

		ImageFromFilename: func(path *byte, width, height *int32) *byte {
			// The binding decodes images on the Go side; the native path
			// loader is never exercised in tests.
			*width, *height = 0, 0
			return nil
		},
		CreateImage: func(data *byte, width, height int32) uintptr {
			return s.alloc("image", nil, nil, width*height)
		},
		DestroyImage: s.free,
	}
}

func (s *Stub) init(argv0 *byte) int32 {
	s.InitCalls++
	if s.InitResult != 0 {
		s.lastError = s.InitResult
	}
	return s.InitResult
}

func (s *Stub) alloc(kind string, title, message *byte, variant int32) uintptr {
	if s.CreateError != 0 {
		s.lastError = s.CreateError
		return 0
	}
	s.next++
	s.created++
	s.objects[s.next] = &stubObject{
		kind:    kind,
		title:   GoString(title),
		message: GoString(message),
		variant: variant,
	}
	return s.next
}

func (s *Stub) free(h uintptr) {
	if _, ok := s.objects[h]; !ok {
		s.badFrees++
		return
	}
	delete(s.objects, h)
	s.freed++
}

func (s *Stub) newString(str string) uintptr {
	s.next++
	s.strings[s.next] = str
	return s.next
}

// cbytes copies str into a NUL-terminated buffer the stub keeps alive for
// its own lifetime, mimicking native-owned memory.
func (s *Stub) cbytes(str string) *byte {
	buf := make([]byte, (len(str)+chunkSize)&^(chunkSize-1))
	copy(buf, str)
	s.buffers = append(s.buffers, buf)
	return &buf[0]
}
