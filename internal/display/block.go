package display

import (
	"github.com/ShayCichocki/quill/pkg/models"
)

// Block is the contract every live display block satisfies. A block owns
// exactly one Session from construction until End; after End no further
// calls are defined.
//
// Variants must implement UpdateFromMessage and Refresh themselves — the
// compiler rejects incomplete variants, so there is no runtime "not
// implemented" path to hit.
type Block interface {
	// UpdateFromMessage mutates the block's visual state from an
	// incoming message and repaints.
	UpdateFromMessage(msg models.Message)
	// Refresh repaints the block's current visual state. showCursor
	// controls terminal cursor visibility during the repaint.
	Refresh(showCursor bool)
	// End finalizes the block: one last repaint with the cursor hidden,
	// then the session stops. Call exactly once.
	End()
}

// base owns the shutdown sequence shared by all block variants. Variants
// embed it and register their Refresh at construction; End always runs
// the final cursorless repaint before stopping the session, in that
// order, and variants cannot override it.
type base struct {
	live    *Session
	refresh func(showCursor bool)
}

func newBase(live *Session) base {
	return base{live: live}
}

// End finalizes the block. See Block.
func (b *base) End() {
	b.refresh(false)
	b.live.Stop()
}

// Session returns the live session the block renders into.
func (b *base) Session() *Session {
	return b.live
}
