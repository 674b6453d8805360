package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	taskboard "github.com/taskboard/taskboard.go"
	"github.com/taskboard/taskboard.go/pkg/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// command is a browser interaction forwarded over the socket.
type command struct {
	Action string `json:"action"`
	Value  string `json:"value"`
	ID     int    `json:"id"`
	User   int    `json:"user"`
	Title  string `json:"title"`
	Done   bool   `json:"done"`
}

// update is a server push: a rendered fragment plus small bits of UI state.
type update struct {
	Target   string `json:"target,omitempty"`
	HTML     string `json:"html,omitempty"`
	ShowMore bool   `json:"showMore"`
	Count    *int   `json:"count,omitempty"`
	Form     string `json:"form,omitempty"`
	Msg      string `json:"msg,omitempty"`
}

// handleWS runs one view activation: a fresh session is created for the
// connection, loaded once, and then driven by commands until the socket
// closes. All store access happens on this goroutine.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := taskboard.New(taskboard.Config{
		BaseURL:  s.cfg.BaseURL,
		PageSize: s.cfg.PageSize,
		Timeout:  s.cfg.Timeout,
		Logger:   &s.log,
	})

	switch r.URL.Query().Get("view") {
	case "user":
		id, err := strconv.Atoi(r.URL.Query().Get("id"))
		if err != nil || id <= 0 {
			s.push(conn, update{Target: "userInfo", HTML: renderError("Missing user identifier.")})
			return
		}
		s.runUserView(r.Context(), conn, sess, id)
	default:
		s.runHomeView(r.Context(), conn, sess)
	}
}

func (s *Server) runHomeView(ctx context.Context, conn *websocket.Conn, sess *taskboard.Session) {
	if err := sess.LoadHome(ctx); err != nil {
		s.push(conn, update{Target: "usersGrid", HTML: renderError(err.Error())})
		return
	}
	s.pushUsersGrid(conn, sess.Store())

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		st := sess.Store()
		switch cmd.Action {
		case "query":
			st.SetQuery(cmd.Value)
		case "clear":
			st.ClearQuery()
		case "more":
			st.AdvanceVisibleCursor(s.cfg.PageSize)
		default:
			continue
		}
		s.pushUsersGrid(conn, st)
	}
}

func (s *Server) runUserView(ctx context.Context, conn *websocket.Conn, sess *taskboard.Session, userID int) {
	if err := sess.LoadUserDetail(ctx, userID); err != nil {
		s.push(conn, update{Target: "userInfo", HTML: renderError(err.Error())})
		return
	}
	s.pushUserInfo(conn, sess, userID)
	s.pushTasks(conn, sess, userID)

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		st := sess.Store()
		switch cmd.Action {
		case "filter":
			st.SetCompletionFilter(store.Filter(cmd.Value))
			s.pushTasks(conn, sess, userID)
		case "toggle":
			st.ToggleTask(cmd.ID, cmd.Done)
			s.pushTasks(conn, sess, userID)
			s.pushUserInfo(conn, sess, userID)
		case "add":
			s.push(conn, update{Form: string(store.FormSubmitting), Msg: "Adding task..."})
			_, err := sess.AddTask(ctx, userID, cmd.Title, cmd.Done)
			status := st.FormStatus()
			s.push(conn, update{Form: string(status.State), Msg: status.Message})
			if err == nil {
				s.pushTasks(conn, sess, userID)
				s.pushUserInfo(conn, sess, userID)
			}
		}
	}
}

func (s *Server) pushUsersGrid(conn *websocket.Conn, st *store.Store) {
	html, err := renderUsersGrid(st)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering users grid failed")
		return
	}
	s.push(conn, update{Target: "usersGrid", HTML: html, ShowMore: st.HasMore()})
}

func (s *Server) pushUserInfo(conn *websocket.Conn, sess *taskboard.Session, userID int) {
	html, err := renderUserInfo(sess.Store(), userID)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering user info failed")
		return
	}
	s.push(conn, update{Target: "userInfo", HTML: html})
}

func (s *Server) pushTasks(conn *websocket.Conn, sess *taskboard.Session, userID int) {
	st := sess.Store()
	html, err := renderTasks(st, userID)
	if err != nil {
		s.log.Error().Err(err).Msg("rendering tasks failed")
		return
	}
	count := len(st.VisibleTasks(userID))
	s.push(conn, update{Target: "todosList", HTML: html, Count: &count})
}

func (s *Server) push(conn *websocket.Conn, u update) {
	if err := conn.WriteJSON(u); err != nil {
		s.log.Debug().Err(err).Msg("websocket write failed")
	}
}
