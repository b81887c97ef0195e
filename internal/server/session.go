package server

import (
	"bufio"
	"bytes"
	"fmt"
	"net"
	"net/http"
)

// session drives a single accepted connection through exactly one
// request/response exchange: read, route, write, half-close. The Connection
// header echoes the client's keep-alive intent but the connection is never
// reused; the write side is shut down as soon as the response is flushed.
type session struct {
	conn    net.Conn
	handler http.Handler
}

func newSession(conn net.Conn, handler http.Handler) *session {
	return &session{conn: conn, handler: handler}
}

// serve runs the exchange. Transport and parse errors abort the session
// silently: no response is written once anything has gone wrong.
func (s *session) serve() {
	defer s.conn.Close()

	// For the TLS variant the handshake is driven by this first read.
	req, err := http.ReadRequest(bufio.NewReader(s.conn))
	if err != nil {
		return
	}
	req.RemoteAddr = s.conn.RemoteAddr().String()

	rec := newRecorder()
	s.handler.ServeHTTP(rec, req)
	req.Body.Close()

	if err := s.writeResponse(req, rec); err != nil {
		return
	}
	s.halfClose()
}

// writeResponse serialises the recorded response. Content-Length is
// computed from the finalised body; the Connection disposition echoes the
// request even though no second request will be served.
func (s *session) writeResponse(req *http.Request, rec *recorder) error {
	disposition := "keep-alive"
	if req.Close {
		disposition = "close"
	}
	rec.header.Del("Connection")
	rec.header.Del("Content-Length")

	bw := bufio.NewWriter(s.conn)
	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", rec.status, http.StatusText(rec.status))
	if err := rec.header.Write(bw); err != nil {
		return err
	}
	fmt.Fprintf(bw, "Connection: %s\r\n", disposition)
	fmt.Fprintf(bw, "Content-Length: %d\r\n\r\n", rec.body.Len())
	if _, err := bw.Write(rec.body.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// halfClose shuts down the write side: shutdown(SHUT_WR) on a TCP
// connection, close_notify on a TLS one. Both conn types expose CloseWrite.
func (s *session) halfClose() {
	type closeWriter interface {
		CloseWrite() error
	}
	if cw, ok := s.conn.(closeWriter); ok {
		cw.CloseWrite()
	}
}

// recorder buffers a handler's response so the session can finalise framing
// headers before anything touches the wire.
type recorder struct {
	header http.Header
	body   bytes.Buffer
	status int
	wrote  bool
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header), status: http.StatusOK}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(status int) {
	if r.wrote {
		return
	}
	r.wrote = true
	r.status = status
}

func (r *recorder) Write(p []byte) (int, error) {
	r.wrote = true
	return r.body.Write(p)
}
