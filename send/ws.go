package send

import (
	"io"

	"github.com/gorilla/websocket"
)

// WSConn adapts a websocket connection into the io.ReadWriter a Sender
// needs, for bridges that expose a serial port over a websocket.
type WSConn struct {
	ws  *websocket.Conn
	buf []byte
}

var _ io.ReadWriteCloser = &WSConn{}

func DialWS(url string) (*WSConn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &WSConn{ws: ws}, nil
}

func (c *WSConn) Read(p []byte) (int, error) {
	if len(c.buf) == 0 {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return 0, err
		}
		c.buf = data
	}
	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

func (c *WSConn) Write(p []byte) (int, error) {
	err := c.ws.WriteMessage(websocket.TextMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *WSConn) Close() error { return c.ws.Close() }
