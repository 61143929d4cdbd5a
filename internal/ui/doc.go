// Package ui contains the Bubble Tea program behind the inline picker. The
// Model type focuses on message orchestration while dedicated helpers own key
// dispatch, query editing and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes).
//   - Navigation helpers (navigation.go) handle confirm, cancel and selection
//     movement. Query editing (input.go) marks the model dirty; finishUpdate
//     re-runs the filter once per update when the query changed and then keeps
//     the selection inside the visible window.
//
// State ownership:
//   - The query buffer, the filter over the candidate set and the selection
//     live in internal/ui/state and know nothing about Bubble Tea.
//   - Rendering goes through a Snapshot of that state: BuildFrame lays out the
//     help line, input box and list box, and Frame.Render draws them.
//
// Harness stands in for the Bubble Tea runtime so tests can type, press keys
// and inspect the view without a terminal.
package ui
