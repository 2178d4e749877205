package randomizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/milk9111/starseeker/progress"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20

	sendBuffer  = 64
	inboxBuffer = 16
	errorBuffer = 8
)

const GameName = "Starseeker"

var (
	ErrRefused   = errors.New("randomizer: connection refused")
	ErrHandshake = errors.New("randomizer: unexpected handshake")
	ErrQueueFull = errors.New("randomizer: send queue full")
	ErrClosed    = errors.New("randomizer: connection closed")
)

type Config struct {
	Address  string
	Slot     string
	Password string
}

// packet is one command of the server protocol. Messages are JSON arrays of
// packets.
type packet struct {
	Cmd string `json:"cmd"`

	// Connect
	Game     string `json:"game,omitempty"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
	UUID     string `json:"uuid,omitempty"`

	// ReceivedItems
	Index int           `json:"index,omitempty"`
	Items []networkItem `json:"items,omitempty"`

	// Connected, LocationChecks
	CheckedLocations []int `json:"checked_locations,omitempty"`
	Locations        []int `json:"locations,omitempty"`

	// ConnectionRefused
	Errors []string `json:"errors,omitempty"`
}

type networkItem struct {
	Item     int `json:"item"`
	Location int `json:"location"`
	Player   int `json:"player"`
}

// Client is a live connection to the randomizer server. Items arrive on a
// buffered channel that the game drains between ticks; checks are queued
// without blocking.
type Client struct {
	conn    *websocket.Conn
	session uuid.UUID

	send   chan []byte
	inbox  chan Batch
	errs   chan error
	done   chan struct{}
	closer sync.Once

	mu      sync.Mutex
	checked map[int]bool
}

// Dial connects, logs in as cfg.Slot and sends every location in known the
// server does not have yet.
func Dial(ctx context.Context, cfg Config, known []int) (*Client, error) {
	addr := cfg.Address
	if !strings.Contains(addr, "://") {
		addr = "ws://" + addr
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, addr, nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("randomizer: dial %s: %w", addr, err)
	}

	c := &Client{
		conn:    conn,
		session: uuid.New(),
		send:    make(chan []byte, sendBuffer),
		inbox:   make(chan Batch, inboxBuffer),
		errs:    make(chan error, errorBuffer),
		done:    make(chan struct{}),
		checked: make(map[int]bool),
	}

	pending, err := c.handshake(ctx, cfg)
	if err != nil {
		conn.Close()
		return nil, err
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go c.readPump()
	go c.writePump()

	for _, p := range pending {
		c.handle(p)
	}
	c.checkAll(known)

	log.Printf("randomizer: connected to %s as %s", addr, cfg.Slot)
	return c, nil
}

// handshake waits for the room info, logs in and waits for the answer.
// Packets that arrive together with the answer are returned for handling.
func (c *Client) handshake(ctx context.Context, cfg Config) ([]packet, error) {
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetReadDeadline(deadline)
		defer c.conn.SetReadDeadline(time.Time{})
	}

	packets, err := c.readPackets()
	if err != nil {
		return nil, err
	}
	if len(packets) == 0 || packets[0].Cmd != "RoomInfo" {
		return nil, ErrHandshake
	}

	login := []packet{{
		Cmd:      "Connect",
		Game:     GameName,
		Name:     cfg.Slot,
		Password: cfg.Password,
		UUID:     c.session.String(),
	}}
	data, err := json.Marshal(login)
	if err != nil {
		return nil, err
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return nil, fmt.Errorf("randomizer: login: %w", err)
	}

	for {
		packets, err := c.readPackets()
		if err != nil {
			return nil, err
		}
		for i, p := range packets {
			switch p.Cmd {
			case "Connected":
				c.markChecked(p.CheckedLocations)
				return packets[i+1:], nil
			case "ConnectionRefused":
				return nil, fmt.Errorf("%w: %s", ErrRefused, strings.Join(p.Errors, ", "))
			}
		}
	}
}

func (c *Client) readPackets() ([]packet, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("randomizer: read: %w", err)
	}
	var packets []packet
	if err := json.Unmarshal(data, &packets); err != nil {
		return nil, fmt.Errorf("randomizer: decode: %w", err)
	}
	return packets, nil
}

func (c *Client) readPump() {
	defer c.Close()

	for {
		packets, err := c.readPackets()
		if err != nil {
			select {
			case <-c.done:
			default:
				if !websocket.IsCloseError(errors.Unwrap(err), websocket.CloseNormalClosure) {
					c.report(err)
				}
			}
			return
		}
		for _, p := range packets {
			c.handle(p)
		}
	}
}

func (c *Client) handle(p packet) {
	switch p.Cmd {
	case "ReceivedItems":
		b := Batch{Index: p.Index, Items: make([]int, len(p.Items))}
		for i, it := range p.Items {
			b.Items[i] = it.Item
		}
		select {
		case c.inbox <- b:
		case <-c.done:
		}
	case "RoomUpdate":
		c.markChecked(p.CheckedLocations)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.report(fmt.Errorf("randomizer: write: %w", err))
				c.Close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.report(fmt.Errorf("randomizer: ping: %w", err))
				c.Close()
				return
			}
		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Client) markChecked(ids []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		c.checked[id] = true
	}
}

// CheckLocation queues id for the server. It never blocks.
func (c *Client) CheckLocation(id int) {
	if c == nil {
		return
	}
	c.checkAll([]int{id})
}

func (c *Client) checkAll(ids []int) {
	c.mu.Lock()
	var fresh []int
	for _, id := range ids {
		if !c.checked[id] {
			c.checked[id] = true
			fresh = append(fresh, id)
		}
	}
	c.mu.Unlock()

	if len(fresh) == 0 {
		return
	}
	data, err := json.Marshal([]packet{{Cmd: "LocationChecks", Locations: fresh}})
	if err != nil {
		c.report(err)
		return
	}

	select {
	case <-c.done:
		c.report(ErrClosed)
		return
	default:
	}

	select {
	case c.send <- data:
	default:
		// The ids stay recorded locally and go out again on the next connect.
		c.mu.Lock()
		for _, id := range fresh {
			delete(c.checked, id)
		}
		c.mu.Unlock()
		c.report(ErrQueueFull)
	}
}

func (c *Client) report(err error) {
	log.Printf("%v", err)
	select {
	case c.errs <- err:
	default:
	}
}

// Items delivers received item batches.
func (c *Client) Items() <-chan Batch { return c.inbox }

// Errors delivers transport failures. Errors are dropped when nobody reads.
func (c *Client) Errors() <-chan error { return c.errs }

// Done is closed when the connection ends.
func (c *Client) Done() <-chan struct{} { return c.done }

func (c *Client) Session() uuid.UUID { return c.session }

// Drain applies every batch received so far to prog without blocking. It
// returns the number of new items.
func (c *Client) Drain(prog *progress.Manager) int {
	if c == nil {
		return 0
	}
	n := 0
	for {
		select {
		case b := <-c.inbox:
			n += Apply(prog, b)
		default:
			return n
		}
	}
}

func (c *Client) Close() error {
	c.closer.Do(func() {
		close(c.done)
	})
	return nil
}
