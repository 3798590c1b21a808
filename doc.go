// Package navigation serializes tree shaped navigation state into canonical
// URL paths for deep linking.
//
// PathFromState walks the active route chain of a NavigationState in lock
// step with a declarative screens configuration and produces a single path
// string such as "/users/42/posts?tab=media". The transformation is pure:
// it never mutates its inputs and holds no state between calls, so any
// reachable point in a tree based navigator can be expressed as a shareable
// URL.
package navigation
