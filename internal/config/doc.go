// Package config reads the settings shared by the coco-prep commands.
//
// Settings come from COCO_PREP_* environment variables, optionally seeded
// from a .env file in the working directory. Unset or unparsable values
// fall back to the fixed TiaoZhanCup dataset layout.
package config
