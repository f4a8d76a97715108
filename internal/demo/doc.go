// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package demo implements the console demonstration runtime.
//
// It wires the calculator, the packaging factories and the homework
// dispatcher into one fixed sequence and waits for every background
// dispatch before returning, so the process only exits once all progress
// lines are printed.
package demo
