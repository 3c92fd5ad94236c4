package main

import "image/color"

var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var DebugColor color.Color = rgbaOf(0xff00ffff)
var ShadowColor color.Color = rgbaOf(0xada38780)

var TimelineColor = rgbaOf(0x937b6aff)
var TimelineBackgroundColor = rgbaOf(0xffffff40)
