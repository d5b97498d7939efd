// Package touchui is a small retained-mode widget toolkit for fixed-size
// RGB565 touch panels, such as the 480x480 SQUiXL.
//
// A [Manager] holds named screens, each an ordered list of widgets painted
// on a [Surface] with a [Writer] for text. Touches are read from a [Sampler],
// classified into taps and swipes by a [Classifier], and dispatched to the
// widgets of the current screen in registration order.
//
// # Quick start
//
//	mgr := touchui.NewManager(canvas, font)
//	mgr.AddScreen("home", touchui.Black)
//	mgr.AddControl("home", touchui.NewButton(20, 20, 120, 48, "Apply",
//		touchui.White, touchui.DarkGreen, touchui.White, func() { ... }))
//	mgr.DrawAll()
//
//	loop := touchui.NewLoop(mgr)
//	loop.Input(sampler, touchui.DefaultGestureConfig())
//	loop.Every(time.Second, func() { bar.SetValue(readLoad()) })
//	err := loop.Run(ctx)
//
// Backends live in sub-packages: backend/raster paints into an in-memory
// image (headless and tests), backend/ebitengine opens a window with
// [Ebitengine] and reads mouse or touch input from it.
//
// # Widgets
//
// [Label], [TextBox], [TextLog], [Button], [Slider], [CheckBox], [Dial] and
// [ProgressBar] all embed [Control]. Mutators such as SetText or SetValue
// repaint immediately when the widget's screen is current and only update
// state otherwise; the next [Manager.DrawAll] catches up.
//
// # Concurrency
//
// A Manager and its widgets are not safe for concurrent use. [Loop]
// serialises everything onto one goroutine: background producers call
// [Loop.Post] or [Loop.Emit], and a panic in any callback stops the loop
// with an error.
//
// # Gestures
//
// A contact episode runs from the first poll that sees a finger to the
// first poll that sees none. Movement beyond [GestureConfig].MoveThreshold
// yields a swipe in the dominant direction; anything else is a tap. Drag
// events exist for the slider but the classifier does not produce them.
//
// # Scripted runs
//
// [TestRunner] replays a JSON script of taps, swipes, screen changes and
// screenshots:
//
//	{"steps": [
//	  {"action": "tap", "x": 40, "y": 40},
//	  {"action": "swipe", "fromX": 100, "fromY": 240, "toX": 400, "toY": 240, "polls": 4},
//	  {"action": "screenshot", "label": "after-swipe"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package touchui
