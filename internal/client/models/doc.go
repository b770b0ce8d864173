// Package models defines the JSON documents exchanged with the Vision AI
// backend and the small helpers the views need to read them.
package models
