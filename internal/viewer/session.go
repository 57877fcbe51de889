package viewer

type fetchState int

const (
	fetchPending fetchState = iota
	fetchOK
	fetchFailed
)

// Session tracks one viewer instance's load state for a poster id.
//
// Poster metadata and the comment list are fetched independently and
// may resolve in either order; the page-dependent UI is ready only when
// both have. A completion carrying a different poster id than the one
// the session currently shows is stale — the user has navigated on —
// and is discarded instead of clobbering state.
type Session struct {
	posterID string

	posterState   fetchState
	commentsState fetchState

	posterErr   string
	commentsErr string

	// comment ids held client-side; appended only after the server
	// confirms a create, never optimistically.
	comments []string
}

func NewSession(posterID string) *Session {
	return &Session{posterID: posterID}
}

func (s *Session) PosterID() string {
	return s.posterID
}

// ApplyPoster records the poster fetch outcome. Returns false (and
// changes nothing) when the result belongs to a previous poster id.
func (s *Session) ApplyPoster(posterID string, errMsg string) bool {
	if posterID != s.posterID {
		return false
	}
	if errMsg != "" {
		s.posterState = fetchFailed
		s.posterErr = errMsg
		return true
	}
	s.posterState = fetchOK
	s.posterErr = ""
	return true
}

// ApplyComments records the comment fetch outcome, same stale guard.
func (s *Session) ApplyComments(posterID string, ids []string, errMsg string) bool {
	if posterID != s.posterID {
		return false
	}
	if errMsg != "" {
		s.commentsState = fetchFailed
		s.commentsErr = errMsg
		return true
	}
	s.commentsState = fetchOK
	s.commentsErr = ""
	s.comments = append([]string(nil), ids...)
	return true
}

// Ready: both fetches resolved successfully; page-dependent UI may
// render.
func (s *Session) Ready() bool {
	return s.posterState == fetchOK && s.commentsState == fetchOK
}

// Usable: the viewer itself can run. Comment loading failing must not
// block navigation and viewing; the panel shows its own failure state.
func (s *Session) Usable() bool {
	return s.posterState == fetchOK
}

func (s *Session) PosterFailed() (string, bool) {
	return s.posterErr, s.posterState == fetchFailed
}

func (s *Session) CommentsFailed() (string, bool) {
	return s.commentsErr, s.commentsState == fetchFailed
}

// ConfirmComment appends a comment id after the server confirmed the
// create. There is deliberately no pre-insert: a comment that failed to
// persist must never have been visible.
func (s *Session) ConfirmComment(id string) {
	s.comments = append(s.comments, id)
}

func (s *Session) RemoveComment(id string) {
	for i, c := range s.comments {
		if c == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return
		}
	}
}

func (s *Session) Comments() []string {
	return s.comments
}
