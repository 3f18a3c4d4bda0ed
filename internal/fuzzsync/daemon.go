// Package fuzzsync implements a QUIC corpus-exchange daemon: peers
// holding a shared fuzzing corpus directory ship length-prefixed ELF
// byte blobs to each other over a single bidirectional stream per
// exchange. It never inspects ELF semantics beyond treating a payload
// as opaque bytes to decode-then-store on receipt, which doubles as a
// round-trip smoke check (every received blob is passed to the Store
// together with whether elf32.FromBytes accepted it; DirStore files
// rejected blobs under a separate "bad" directory).
//
// Grounded on internal/runtime/netstack/http3.go's QUIC/TLS1.3 server
// lifecycle (listen, accept loop, error channel, graceful Stop) and
// certutil.go's self-signed TLS helper, adapted from HTTP/3's request
// handler model to a raw QUIC stream protocol since fuzzsync exchanges
// opaque blobs rather than HTTP requests.
package fuzzsync

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	quic "github.com/quic-go/quic-go"

	"github.com/orizon-lang/elf32/pkg/elf32"
)

// maxBlobSize bounds a single exchanged corpus entry; fuzzers generate
// malformed files but not unbounded ones.
const maxBlobSize = 64 << 20

// Store receives a decoded-or-rejected corpus blob.
type Store interface {
	// Put saves raw, the bytes as received. ok reports whether raw
	// parsed as a well-formed ELF32 image (elf32.FromBytes succeeded);
	// Store implementations may choose to keep malformed blobs too,
	// since those are exactly what a fuzzer wants to compare notes on.
	Put(raw []byte, ok bool) error
}

// Daemon listens for QUIC connections and stores each opaque blob a
// peer streams to it.
type Daemon struct {
	addr     string
	tlsConf  *tls.Config
	store    Store
	listener *quic.Listener
	errC     chan error
}

// NewDaemon builds a daemon bound to addr, storing received blobs via
// store. tlsConf must already carry a certificate; TLS1.3 is enforced
// the way netstack's HTTP3 helpers do.
func NewDaemon(addr string, tlsConf *tls.Config, store Store) *Daemon {
	c := tlsConf.Clone()
	if c.MinVersion == 0 || c.MinVersion < tls.VersionTLS13 {
		c.MinVersion = tls.VersionTLS13
	}
	if len(c.NextProtos) == 0 {
		c.NextProtos = []string{"elf-fuzz-sync"}
	}
	return &Daemon{addr: addr, tlsConf: c, store: store, errC: make(chan error, 1)}
}

// Start begins listening and accepting connections in the background.
// It returns once the listener is bound.
func (d *Daemon) Start(ctx context.Context) error {
	l, err := quic.ListenAddr(d.addr, d.tlsConf, nil)
	if err != nil {
		return fmt.Errorf("fuzzsync: listen %s: %w", d.addr, err)
	}
	d.listener = l

	go d.acceptLoop(ctx)
	return nil
}

func (d *Daemon) acceptLoop(ctx context.Context) {
	for {
		conn, err := d.listener.Accept(ctx)
		if err != nil {
			select {
			case d.errC <- err:
			default:
			}
			return
		}
		go d.serveConn(ctx, conn)
	}
}

func (d *Daemon) serveConn(ctx context.Context, conn *quic.Conn) {
	for {
		stream, err := conn.AcceptStream(ctx)
		if err != nil {
			return
		}
		go d.serveStream(stream)
	}
}

func (d *Daemon) serveStream(stream *quic.Stream) {
	defer stream.Close()
	blob, err := readBlob(stream)
	if err != nil {
		return
	}
	_, parseErr := elf32.FromBytes(blob)
	_ = d.store.Put(blob, parseErr == nil)
}

// Error returns a non-blocking channel receiving the first accept error.
func (d *Daemon) Error() <-chan error { return d.errC }

// Stop closes the listener.
func (d *Daemon) Stop() error {
	if d.listener == nil {
		return nil
	}
	return d.listener.Close()
}

// Send dials addr and streams blob to it, used by fuzzing workers
// pushing a newly discovered corpus entry to a peer.
func Send(ctx context.Context, addr string, tlsConf *tls.Config, blob []byte) error {
	if len(blob) > maxBlobSize {
		return fmt.Errorf("fuzzsync: blob of %d bytes exceeds limit %d", len(blob), maxBlobSize)
	}
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := quic.DialAddr(dialCtx, addr, tlsConf, nil)
	if err != nil {
		return fmt.Errorf("fuzzsync: dial %s: %w", addr, err)
	}
	defer conn.CloseWithError(0, "")

	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		return fmt.Errorf("fuzzsync: open stream: %w", err)
	}
	defer stream.Close()

	return writeBlob(stream, blob)
}

func writeBlob(w io.Writer, blob []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(blob)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(blob)
	return err
}

func readBlob(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > maxBlobSize {
		return nil, fmt.Errorf("fuzzsync: declared blob size %d exceeds limit %d", n, maxBlobSize)
	}
	blob := make([]byte, n)
	if _, err := io.ReadFull(r, blob); err != nil {
		return nil, err
	}
	return blob, nil
}
