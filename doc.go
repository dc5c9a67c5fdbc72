// Package ccui is a terminal UI tree addressed by string ids.
//
// Run starts a render loop that owns the tree. Callers on any goroutine change
// the tree through a Document or through handles. Each change is a message that
// returns as soon as it is queued, and the loop applies messages in the order
// they were sent and repaints the terminal on a fixed tick:
//
//	doc, err := ccui.Run()
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//
//	doc.AddWidget("title", widget.NewText("Hello"))
//	row, _ := doc.AddContainer("row", style.Row())
//	row.AddWidget("left", widget.NewText("L"))
//	row.AddWidget("right", widget.NewText("R"))
//
//	for ev := range doc.Events() {
//		if ev.IsRune('q') {
//			break
//		}
//	}
//
// Changes that break the tree (a duplicate id, a missing parent) are dropped by
// the loop and do not reach the caller. Queries such as GetContainer and Lookup
// wait for the loop and report such failures as ErrNotFound.
package ccui
