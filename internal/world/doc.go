// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package world holds the mutable state a program acts on: a toroidal grid of
// cells and the single robot standing on it.
//
// # Ownership
//
// A World is owned by exactly one session and mutated in place. Nothing in this
// package is safe for concurrent use; callers that need several independent runs
// create several worlds.
//
// # Lighting
//
// The light only ever switches cells on: '.' becomes 'x' and 'O' becomes 'X'.
// Lit cells stay lit, and every other symbol found in a map, 'x' and 'X'
// included, is carried through unchanged no matter how often the robot lights it.
package world
