package socket

import (
	"log"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server. Clients join one room per conversation
// id (and their own user id for match events); services broadcast into those
// rooms through the Notifier interface.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers.
func NewServer() *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room == "" {
			log.Println("Invalid room in join request")
			return
		}
		log.Printf("Socket %s joined room %s\n", c.ID(), room)
		c.Join(room)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, room string) {
		c.Leave(room)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &Server{io: server}
}

// Serve runs the Socket.IO event loop. Blocks until Close.
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the event loop down.
func (s *Server) Close() error {
	return s.io.Close()
}

// Handler exposes the server for mounting under /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.io
}

// BroadcastToRoom pushes an event to every client in the room.
func (s *Server) BroadcastToRoom(room, event string, payload interface{}) {
	s.io.BroadcastToRoom("/", room, event, payload)
}
