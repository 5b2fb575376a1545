package dashboard

import "time"

type StateKind int

const (
	Idle StateKind = iota
	Loading
	Uploading
	Error
	ShareLinkReady
)

func (k StateKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Uploading:
		return "uploading"
	case Error:
		return "error"
	case ShareLinkReady:
		return "share_link_ready"
	default:
		return "unknown"
	}
}

// State is the dashboard's derived status. Message is set for Error; URL and
// ExpiresAt for ShareLinkReady.
type State struct {
	Kind      StateKind
	Message   string
	URL       string
	ExpiresAt time.Time
}

// State derives the current status. Work in progress wins over an error,
// and an error wins over a share notice.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.view.IsUploading:
		return State{Kind: Uploading}
	case d.loading:
		return State{Kind: Loading}
	case d.errMsg != "":
		return State{Kind: Error, Message: d.errMsg}
	case d.share != nil:
		return State{Kind: ShareLinkReady, URL: d.share.url, ExpiresAt: d.share.expiresAt}
	default:
		return State{Kind: Idle}
	}
}
