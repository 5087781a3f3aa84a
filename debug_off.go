// Copyright (c) 2024 The vata authors
//
// MIT License

//go:build !debug

package vata

const _DEBUG bool = false
const _LOGLEVEL int = 0

const assertEnabled = false

func tracef(runID string, format string, a ...interface{}) {}
