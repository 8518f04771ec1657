// Package modfile lists candidate mod archives in a mods directory and
// resolves the platform-default .minecraft/mods location.
package modfile
