// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"

	"calc/internal/document"
	"calc/internal/lsp"
)

const lsName = "calc" // Name identifier for the language server

var version = "0.0.1"

func main() {
	engineName := flag.String("engine", "handwritten", "parser engine used for diagnostics")
	flag.Parse()

	// 1 = debug level, nil = default logger
	commonlog.Configure(1, nil)

	engine, err := document.EngineByName(*engineName)
	if err != nil {
		log.Println(err)
		os.Exit(2)
	}

	calcHandler := lsp.NewCalcHandler(engine, version)

	// debug=false keeps glsp's own message tracing off
	s := server.NewServer(calcHandler.Handler(), lsName, false)

	log.Println("Starting calc LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting calc LSP server:", err)
		os.Exit(1)
	}
}
