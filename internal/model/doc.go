// Package model holds the in-memory student and lesson books.
//
// Book keeps both lists in display order, an ID index per list backed by
// pkg/cmap, the current filter for each list and the entity selected for
// the info panel. Commands only see the Model interface.
package model
