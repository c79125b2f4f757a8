// Package logger provides the leveled operator log of the coco-prep commands.
package logger
