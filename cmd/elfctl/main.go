// elfctl is a flag-based CLI front-end over pkg/elf32: build, inspect,
// and incrementally extend ELF32 object files, and watch a directory of
// generated ones for invariant violations. Grounded on orizon-fmt's
// flag-per-subcommand style (one flag.FlagSet per verb, parsed from
// os.Args[2:]).
package main

import (
	"flag"
	"fmt"
	"os"

	orierr "github.com/orizon-lang/elf32/internal/errors"

	"github.com/orizon-lang/elf32/internal/elfio"
	"github.com/orizon-lang/elf32/pkg/elf32"
	"github.com/orizon-lang/elf32/pkg/elf32/enum"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = runNew(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "append-section":
		err = runAppendSection(os.Args[2:])
	case "append-symbol":
		err = runAppendSymbol(os.Args[2:])
	case "append-segment":
		err = runAppendSegment(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "elfctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: elfctl <new|inspect|append-section|append-symbol|append-segment|watch> [flags]")
}

func cliErr(op string, err error) error {
	return orierr.NewStandardError(orierr.CategorySystem, "CLI_"+op, err.Error(), nil)
}

func runNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	typ := fs.String("type", "exec", "object type: rel|exec|dyn|core")
	machine := fs.String("machine", "EM_X86_64", "machine constant name")
	data := fs.String("data", "lsb", "endianness: lsb|msb")
	out := fs.String("out", "", "output path")
	fs.Parse(args)

	if *out == "" {
		return fmt.Errorf("new: -out is required")
	}

	et, err := parseET(*typ)
	if err != nil {
		return err
	}
	em, err := enum.ParseEM("EM_" + trimPrefix(*machine, "EM_"))
	if err != nil {
		return err
	}
	ed, err := parseData(*data)
	if err != nil {
		return err
	}

	c := elf32.New(ed, et, em)
	b, err := c.Serialize()
	if err != nil {
		return cliErr("SERIALIZE", err)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		return cliErr("WRITE", err)
	}
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect: exactly one input file required")
	}

	c, err := elf32.FromFile(fs.Arg(0))
	if err != nil {
		return cliErr("PARSE", err)
	}

	fmt.Printf("type=%s machine=%s data=%s entry=0x%x\n", c.Ehdr.Type, c.Ehdr.Machine, c.Ehdr.Ident.Data, c.Ehdr.Entry)
	fmt.Printf("sections (%d):\n", len(c.Shdrs))
	for i, shdr := range c.Shdrs {
		fmt.Printf("  [%d] type=%s flags=%s size=%d offset=%d\n", i, shdr.Type, shdr.Flags, shdr.Size, shdr.Offset)
	}
	fmt.Printf("segments (%d):\n", len(c.Phdrs))
	for i, phdr := range c.Phdrs {
		fmt.Printf("  [%d] type=%s flags=%s vaddr=0x%x filesz=%d\n", i, phdr.Type, phdr.Flags, phdr.Vaddr, phdr.Filesz)
	}
	return nil
}

func runAppendSection(args []string) error {
	fs := flag.NewFlagSet("append-section", flag.ExitOnError)
	name := fs.String("name", "", "section name")
	addr := fs.Uint("addr", 0, "sh_addr")
	in := fs.String("in", "", "file holding the section payload")
	out := fs.String("out", "", "output path")
	fs.Parse(args)
	if fs.NArg() != 1 || *name == "" || *in == "" || *out == "" {
		return fmt.Errorf("append-section: -name, -in, -out and an input file are required")
	}

	c, err := elf32.FromFile(fs.Arg(0))
	if err != nil {
		return cliErr("PARSE", err)
	}
	payload, err := os.ReadFile(*in)
	if err != nil {
		return cliErr("READ", err)
	}
	if _, err := c.AppendSection(*name, payload, uint32(*addr)); err != nil {
		return cliErr("APPEND_SECTION", err)
	}
	b, err := c.Serialize()
	if err != nil {
		return cliErr("SERIALIZE", err)
	}
	return os.WriteFile(*out, b, 0o644)
}

func runAppendSymbol(args []string) error {
	fs := flag.NewFlagSet("append-symbol", flag.ExitOnError)
	name := fs.String("name", "", "symbol name")
	section := fs.Uint("section", 0, "st_shndx")
	offset := fs.Uint("offset", 0, "st_value")
	size := fs.Uint("size", 0, "st_size")
	bind := fs.String("bind", "STB_GLOBAL", "symbol binding constant name")
	typ := fs.String("stype", "STT_FUNC", "symbol type constant name")
	out := fs.String("out", "", "output path")
	fs.Parse(args)
	if fs.NArg() != 1 || *out == "" {
		return fmt.Errorf("append-symbol: an input file and -out are required")
	}

	c, err := elf32.FromFile(fs.Arg(0))
	if err != nil {
		return cliErr("PARSE", err)
	}
	stb, err := enum.ParseSTB(*bind)
	if err != nil {
		return err
	}
	stt, err := enum.ParseSTT(*typ)
	if err != nil {
		return err
	}
	if _, err := c.AppendSymbol(*name, enum.SHN(uint32(*section)), uint32(*offset), uint32(*size), stb, stt, enum.STV_DEFAULT); err != nil {
		return cliErr("APPEND_SYMBOL", err)
	}
	b, err := c.Serialize()
	if err != nil {
		return cliErr("SERIALIZE", err)
	}
	return os.WriteFile(*out, b, 0o644)
}

func runAppendSegment(args []string) error {
	fs := flag.NewFlagSet("append-segment", flag.ExitOnError)
	section := fs.Int("section", -1, "section index to bind the segment to")
	out := fs.String("out", "", "output path")
	fs.Parse(args)
	if fs.NArg() != 1 || *section < 0 || *out == "" {
		return fmt.Errorf("append-segment: an input file, -section and -out are required")
	}

	c, err := elf32.FromFile(fs.Arg(0))
	if err != nil {
		return cliErr("PARSE", err)
	}
	if _, err := c.AppendSegment(*section, nil, nil, enum.PF_R|enum.PF_X); err != nil {
		return cliErr("APPEND_SEGMENT", err)
	}
	b, err := c.Serialize()
	if err != nil {
		return cliErr("SERIALIZE", err)
	}
	return os.WriteFile(*out, b, 0o644)
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("watch: exactly one directory required")
	}

	w, err := elfio.NewWatcher(fs.Arg(0))
	if err != nil {
		return cliErr("WATCH", err)
	}
	defer w.Close()

	for v := range w.Validations() {
		if v.Err != nil {
			fmt.Printf("%s: invariant violation: %v\n", v.Path, v.Err)
		} else {
			fmt.Printf("%s: ok\n", v.Path)
		}
	}
	return nil
}

func parseET(s string) (enum.ET, error) {
	switch s {
	case "rel":
		return enum.ET_REL, nil
	case "exec":
		return enum.ET_EXEC, nil
	case "dyn":
		return enum.ET_DYN, nil
	case "core":
		return enum.ET_CORE, nil
	default:
		return 0, fmt.Errorf("new: unknown -type %q", s)
	}
}

func parseData(s string) (enum.ELFDATA, error) {
	switch s {
	case "lsb":
		return enum.ELFDATA2LSB, nil
	case "msb":
		return enum.ELFDATA2MSB, nil
	default:
		return 0, fmt.Errorf("new: unknown -data %q", s)
	}
}

func trimPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
