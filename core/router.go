package core

// ScreenStack holds the modal screens layered over the browse view,
// topmost last. While any screen is up, key input routes to the top of
// the stack; an empty stack means the browse view has focus.
type ScreenStack struct {
	items []Screen
}

// Push puts screen on top of the stack. Nil screens are ignored.
func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

// Pop removes and returns the top screen, or nil when the stack is
// empty.
func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Top returns the screen that currently has focus without removing it.

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
