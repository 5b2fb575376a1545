package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophdrive/internal/client/authform"
	"github.com/dmitrijs2005/gophdrive/internal/client/dashboard"
	"github.com/dmitrijs2005/gophdrive/internal/client/filetype"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/theme"
	"github.com/dmitrijs2005/gophdrive/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("please log in first")

func (a *App) getStatus() string {
	var parts []string
	if a.email != "" {
		parts = append(parts, a.email)
	}
	if m := a.mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// enterDashboard mounts the dashboard and moves to it when a session exists.
func (a *App) enterDashboard(ctx context.Context) {
	a.route = a.dash.Mount(ctx)
	if a.route != models.RouteDashboard {
		return
	}
	a.email = a.identity.LastEmail(ctx)
	a.render()
}

func (a *App) submit(ctx context.Context, mode authform.Mode) error {
	def := ""
	if mode == authform.ModeLogin {
		def = a.identity.LastEmail(ctx)
	}

	email, err := getSimpleText(a.reader, "Email", def, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.form.Submit(ctx, authform.Form{Mode: mode, Email: email, Password: string(password)})
	if res.Message != "" {
		if res.Route == models.RouteDashboard || res.Message == authform.MsgRegistered {
			printlnFn(a.styles.ok.Render(res.Message))
		} else {
			printlnFn(a.styles.err.Render(res.Message))
		}
	}

	if res.Route == models.RouteDashboard {
		a.enterDashboard(ctx)
	}
	return nil
}

func (a *App) Register(ctx context.Context) error {
	return a.submit(ctx, authform.ModeRegister)
}

func (a *App) Login(ctx context.Context) error {
	return a.submit(ctx, authform.ModeLogin)
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.route = a.dash.Logout(ctx)
	a.email = ""
	printlnFn("Logged out")
	return nil
}

// render prints the visible files in the current layout followed by the
// dashboard status line.
func (a *App) render() {
	v := a.dash.View()
	files := a.dash.Visible()

	header := fmt.Sprintf("%d file(s)", len(files))
	if v.SearchQuery != "" {
		header += fmt.Sprintf(" matching %q", v.SearchQuery)
	}
	if v.SelectedCategory != nil {
		header += " in " + *v.SelectedCategory
	}
	printlnFn(a.styles.title.Render(header))

	if v.IsGridView {
		renderGrid(a.out, a.styles, files, a.now())
	} else {
		renderList(a.out, a.styles, files, a.now())
	}
	a.report()
}

// report prints the dashboard's current status, if it has one worth showing.
func (a *App) report() {
	st := a.dash.State()
	switch st.Kind {
	case dashboard.Error:
		printlnFn(a.styles.err.Render(st.Message))
	case dashboard.ShareLinkReady:
		printlnFn(a.styles.ok.Render(fmt.Sprintf("Link copied to clipboard: %s (expires %s)",
			st.URL, st.ExpiresAt.Local().Format("15:04"))))
	}
}

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.render()
	return nil
}

func (a *App) Search(ctx context.Context, q string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.dash.SetSearch(q)
	a.render()
	return nil
}

// Filter selects a category. An empty name clears the filter; "?" lists the
// categories present.
func (a *App) Filter(ctx context.Context, name string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	switch name {
	case "":
		a.dash.SelectCategory(nil)
	case "?":
		for _, c := range a.dash.Categories() {
			printlnFn(c)
		}
		return nil
	default:
		a.dash.SelectCategory(&name)
	}
	a.render()
	return nil
}

func (a *App) ToggleView(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.dash.ToggleView()
	a.render()
	return nil
}

// uploadFile describes the file at path. Failures to stat or open it are
// reported by the dashboard when it reads the file.
func uploadFile(path string) models.UploadFile {
	f := models.UploadFile{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
	if fi, err := os.Stat(path); err == nil {
		f.Size = fi.Size()
	}
	if t, err := filetype.DetectFile(path); err == nil {
		f.Type = t
	}
	return f
}

func (a *App) Upload(ctx context.Context, paths []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	files := make([]models.UploadFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, uploadFile(p))
	}
	printlnFn(fmt.Sprintf("Uploading %d file(s)...", len(files)))
	a.dash.Upload(ctx, files)
	a.render()
	return nil
}

func (a *App) Download(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if saved := a.dash.Download(ctx, id); saved != "" {
		printlnFn(a.styles.ok.Render("Saved to " + saved))
		return nil
	}
	a.report()
	return nil
}

func (a *App) Share(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.dash.Share(ctx, id)
	a.report()
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	a.dash.Delete(ctx, id)
	a.render()
	return nil
}

// Theme prints the current theme, or switches to name and persists it.
func (a *App) Theme(ctx context.Context, name string) error {
	if name == "" {
		printlnFn("Theme: " + string(a.themes.Current()))
		return nil
	}
	t, err := theme.Parse(name)
	if err != nil {
		return err
	}
	if err := a.themes.Set(ctx, t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	a.styles = newStyles(t)
	printlnFn("Theme: " + string(t))
	return nil
}
