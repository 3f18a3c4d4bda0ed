// elf-fuzz-sync runs the fuzzsync corpus-exchange daemon: listen mode
// accepts incoming blobs from peers into a corpus directory, send mode
// dials a peer and pushes one file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orizon-lang/elf32/internal/fuzzsync"
	"github.com/orizon-lang/elf32/internal/runtime/netstack"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: elf-fuzz-sync <listen|send> [flags]")
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "listen":
		err = runListen(os.Args[2:])
	case "send":
		err = runSend(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, "usage: elf-fuzz-sync <listen|send> [flags]")
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "elf-fuzz-sync:", err)
		os.Exit(1)
	}
}

func runListen(args []string) error {
	fs := flag.NewFlagSet("listen", flag.ExitOnError)
	addr := fs.String("addr", "0.0.0.0:4433", "address to listen on")
	dir := fs.String("dir", "./corpus", "corpus directory to save received blobs into")
	fs.Parse(args)

	tlsConf, err := netstack.GenerateSelfSignedTLS([]string{"localhost"}, 0)
	if err != nil {
		return fmt.Errorf("generating TLS config: %w", err)
	}

	d := fuzzsync.NewDaemon(*addr, tlsConf, fuzzsync.DirStore{Dir: *dir})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		return err
	}
	fmt.Printf("elf-fuzz-sync: listening on %s, saving corpus to %s\n", *addr, *dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case err := <-d.Error():
		return err
	}
	return d.Stop()
}

func runSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	addr := fs.String("addr", "", "peer address to send to")
	fs.Parse(args)
	if *addr == "" || fs.NArg() != 1 {
		return fmt.Errorf("send: -addr and exactly one file required")
	}

	blob, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	tlsConf, err := netstack.GenerateSelfSignedTLS([]string{"localhost"}, 0)
	if err != nil {
		return fmt.Errorf("generating TLS config: %w", err)
	}
	tlsConf.InsecureSkipVerify = true // peer corpus daemons use ephemeral self-signed certs

	return fuzzsync.Send(context.Background(), *addr, tlsConf, blob)
}
