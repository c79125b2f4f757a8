// Package yolo parses YOLO label files and converts their boxes to COCO
// geometry.
//
// A label file holds one object per line:
//
//	<class_id> <center_x> <center_y> <width> <height>
//
// with the four coordinates normalized to [0, 1] by the image size.
package yolo
