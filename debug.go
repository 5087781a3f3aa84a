// Copyright (c) 2024 The vata authors
//
// MIT License

//go:build debug

package vata

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

const assertEnabled = true

func init() {
	log.SetOutput(os.Stdout)
}

// tracef logs a worklist/split/promotion event when compiled with the debug
// build tag. runID ties a trace line back to one InclusionChecker run, the
// way the teacher's logTable ties a dump to one BDD.
func tracef(runID string, format string, a ...interface{}) {
	if _LOGLEVEL > 0 {
		log.Printf("[%s] "+format, append([]interface{}{runID}, a...)...)
	}
}
