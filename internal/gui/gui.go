// Package gui implements the GTK3 wallpaper selector strip.
// It shows thumbnails in a horizontally scrolling row; a primary click applies
// the image and closes the window, q or Q closes without applying.
package gui

import (
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"rwall/internal/log"
	"rwall/internal/manager"
)

// Options mirrors the styling flags.
type Options struct {
	Rounded     bool
	Transparent bool
}

// Init initialises GTK. It must run before any other call in this package.
func Init() {
	gtk.Init(nil)
}

// Idle runs the main loop without creating a window. It never returns on its own.
func Idle() {
	gtk.Main()
}

// Run builds the window for thumbs and blocks in the GTK main loop until the
// user picks a wallpaper or quits. onSelect is called at most once.
func Run(opts Options, thumbs []manager.Thumbnail, onSelect func(path string)) error {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return err
	}
	win.SetTitle("Wallpaper Selector")
	win.SetDefaultSize(800, 200)
	win.SetPosition(gtk.WIN_POS_CENTER)
	win.SetDecorated(false)
	win.SetKeepAbove(true)
	win.SetTypeHint(gdk.WINDOW_TYPE_HINT_UTILITY)

	if opts.Transparent {
		win.SetAppPaintable(true)
		if screen, err := win.GetScreen(); err == nil {
			if visual, err := screen.GetRGBAVisual(); err == nil && visual != nil {
				win.SetVisual(visual)
			}
		}
	}

	if err := applyCSS(win, opts); err != nil {
		log.Printf("Failed to load styles: %v", err)
	}

	scroll, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return err
	}
	scroll.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_NEVER)
	win.Add(scroll)

	strip, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 10)
	if err != nil {
		return err
	}
	if ctx, err := strip.GetStyleContext(); err == nil {
		if opts.Rounded {
			ctx.AddClass("rounded-container")
		} else {
			ctx.AddClass("container")
		}
	}
	scroll.Add(strip)

	// Later clicks are dropped once the first one has been handled.
	selected := false
	for _, th := range thumbs {
		path := th.Path
		item, err := newItem(th)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		item.Connect("button-press-event", func(_ *gtk.EventBox, ev *gdk.Event) bool {
			btn := gdk.EventButtonNewFromEvent(ev)
			if btn.Button() != gdk.BUTTON_PRIMARY {
				return false
			}
			if !selected {
				selected = true
				onSelect(path)
				gtk.MainQuit()
			}
			return true
		})
		strip.PackStart(item, false, false, 5)
	}

	win.Connect("key-press-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		key := gdk.EventKeyNewFromEvent(ev)
		if key.KeyVal() == gdk.KEY_q || key.KeyVal() == gdk.KEY_Q {
			gtk.MainQuit()
			return true
		}
		return false
	})
	win.Connect("destroy", func() {
		gtk.MainQuit()
	})

	win.ShowAll()
	gtk.Main()
	return nil
}

func newItem(th manager.Thumbnail) (*gtk.EventBox, error) {
	pixbuf, err := toPixbuf(th.Image)
	if err != nil {
		return nil, err
	}
	img, err := gtk.ImageNewFromPixbuf(pixbuf)
	if err != nil {
		return nil, err
	}

	box, err := gtk.EventBoxNew()
	if err != nil {
		return nil, err
	}
	box.Add(img)
	box.SetTooltipText(th.Path)
	if ctx, err := box.GetStyleContext(); err == nil {
		ctx.AddClass("event-box")
	}
	return box, nil
}
