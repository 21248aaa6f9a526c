package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"
	"github.com/fulldump/goconfig"

	"github.com/jugglab/juggl"
)

type config struct {
	Input     string `usage:"input file path"`
	Delimiter string `usage:"delimiter, supports escape sequences like \\n or \\x00"`
	Seed      string `usage:"random seed for reproducible shuffling (decimal uint64)"`
	Workers   int    `usage:"number of scan workers (default: number of CPUs)"`
}

func main() {
	c := config{
		Delimiter: "\\n",
	}
	goconfig.Read(&c)

	if err := run(c, os.Stdout); err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(1)
	}
}

func run(c config, out io.Writer) error {
	if c.Input == "" {
		return errors.New("input file is required")
	}

	opts := []juggl.Option{}
	if c.Workers > 0 {
		opts = append(opts, juggl.WithWorkers(c.Workers))
	}

	if c.Seed != "" {
		seed, err := strconv.ParseUint(c.Seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", c.Seed, err)
		}

		opts = append(opts, juggl.WithSeed(seed))
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}

	// Zero-length mappings are invalid on Linux; an empty file is simply
	// an empty buffer.
	var data []byte

	if fi.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return fmt.Errorf("mmap %s: %w", c.Input, err)
		}
		defer m.Unmap()

		data = m
	}

	s, err := juggl.NewShuffler(data, juggl.DecodeDelimiter(c.Delimiter), opts...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if _, err := s.WriteTo(w); err != nil {
		return err
	}

	return w.Flush()
}
