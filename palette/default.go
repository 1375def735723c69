package palette

// Text1 is the default table for 40 column text tiles; anything else is
// background.
var Text1 = Table{
	{RGB{0xff, 0xff, 0xff}, 1}, // text
}

// Text2 is the default table for 32 column text tiles.
var Text2 = Table{
	{RGB{0x24, 0x24, 0xff}, 0}, // background
	{RGB{0xff, 0xff, 0xff}, 1}, // text
}

// Graphic4 is the default table for the 4 color bitmap mode.
var Graphic4 = Table{
	{RGB{0x00, 0x00, 0x00}, 0}, // transparent
	{RGB{0x01, 0x01, 0x01}, 1}, // black
	{RGB{0x24, 0xdb, 0x24}, 2}, // medium green
	{RGB{0x6d, 0xff, 0x6d}, 3}, // light green
}

// Graphic16 is the default table for every other mode and matches the
// standard MSX palette.
var Graphic16 = Table{
	{RGB{0x00, 0x00, 0x00}, 0},  // transparent
	{RGB{0x01, 0x01, 0x01}, 1},  // black
	{RGB{0x24, 0xdb, 0x24}, 2},  // medium green
	{RGB{0x6d, 0xff, 0x6d}, 3},  // light green
	{RGB{0x24, 0x24, 0xff}, 4},  // dark blue
	{RGB{0x49, 0x6d, 0xff}, 5},  // light blue
	{RGB{0xb6, 0x24, 0x24}, 6},  // dark red
	{RGB{0x49, 0xdb, 0xff}, 7},  // cyan
	{RGB{0xff, 0x24, 0x24}, 8},  // medium red
	{RGB{0xff, 0x6d, 0x6d}, 9},  // light red
	{RGB{0xdb, 0xdb, 0x24}, 10}, // dark yellow
	{RGB{0xdb, 0xdb, 0x92}, 11}, // light yellow
	{RGB{0x24, 0x92, 0x24}, 12}, // dark green
	{RGB{0xdb, 0x49, 0xb6}, 13}, // magenta
	{RGB{0xb6, 0xb6, 0xb6}, 14}, // gray
	{RGB{0xff, 0xff, 0xff}, 15}, // white
}
