/*
Package xor applies a repeating XOR key to every byte that passes through a Reader or Writer.

This is NOT encryption, it's easily reversible without knowing anything but the key, and often without that.
It exists to give the package transform a byte level step that can be swapped out without touching the container format.

# How it works:

Each byte is combined with the current key byte, then the screen moves to the next key byte.
After the last key byte is used the first is used again, like a ring buffer.
A single byte key, such as DefaultKey, screens every byte with the same value.

Since XOR is its own inverse, the same key screens and unscreens data.
*/
package xor
