// Copyright 2024 OFD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mockofd is a minimal OFD operator emulator: it accepts one
// document per connection, decodes it, and writes back an operatorAck.
// Only the listening address, shutdown and per-connection errors are
// logged; decoded documents are not. No cryptographic signing, no
// persistence.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ofd-go/ofd/concurrency/gopool"
	"github.com/ofd-go/ofd/ofderr"
	"github.com/ofd-go/ofd/protocol/fiscal"
	"github.com/ofd-go/ofd/protocol/ofdheader"
)

func main() {
	host := flag.String("host", "", "host to listen on")
	port := flag.Int("port", 12345, "port to listen on")
	flag.Parse()

	logger := log.New(os.Stdout, "mockofd: ", log.LstdFlags)

	fiscal.AckClock = func() int64 { return time.Now().Unix() }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notify := make(chan os.Signal, 1)
	signal.Notify(notify, os.Interrupt)
	go func() {
		<-notify
		logger.Println("received interrupt, shutting down")
		cancel()
	}()

	addr := net.JoinHostPort(*host, strconv.Itoa(*port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatalf("listen %s: %v", addr, err)
	}
	logger.Printf("mock ofd server listening on %s", addr)

	if err := serve(ctx, ln, logger); err != nil && ctx.Err() == nil {
		logger.Fatalf("serve: %v", err)
	}
}

// serve accepts connections until ctx is cancelled. Each accepted
// connection is dispatched onto a bounded worker pool so a burst of
// short-lived connections reuses goroutines instead of spawning one
// per connection unconditionally.
func serve(ctx context.Context, ln net.Listener, logger *log.Logger) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})

	registry := fiscal.DefaultRegistry()
	pool := gopool.NewGoPool("mockofd-conn", gopool.DefaultOption())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				group.Wait()
				return nil
			}
			return err
		}
		conn := conn
		pool.CtxGo(ctx, func() {
			defer conn.Close()
			if err := handleConnection(conn, registry); err != nil && err != io.EOF {
				logger.Printf("connection from %s: %v", conn.RemoteAddr(), err)
			}
		})
	}
}

// handleConnection reads exactly one session header and its declared
// container, decodes the document, and writes back an operatorAck.
func handleConnection(conn net.Conn, registry *fiscal.Registry) error {
	sessionRaw := make([]byte, ofdheader.SessionHeaderSize)
	if _, err := io.ReadFull(conn, sessionRaw); err != nil {
		return err
	}
	session, err := ofdheader.UnpackSession(sessionRaw)
	if err != nil {
		return err
	}

	containerRaw := make([]byte, session.Length)
	if _, err := io.ReadFull(conn, containerRaw); err != nil {
		return err
	}
	if len(containerRaw) < ofdheader.FrameHeaderSize {
		return ofderr.New(ofderr.WrongSize, "container shorter than frame header")
	}
	frame, err := ofdheader.Unpack(containerRaw[:ofdheader.FrameHeaderSize], ofdheader.Strict)
	if err != nil {
		return err
	}

	doc, err := registry.Decode(containerRaw, []byte{'0'})
	if err != nil {
		return err
	}

	inner := doc["document"].(map[string]any)
	var body map[string]any
	for _, v := range inner {
		body, _ = v.(map[string]any)
	}

	response, err := registry.BuildAck(body, session, frame)
	if err != nil {
		return err
	}

	_, err = conn.Write(response)
	return err
}
