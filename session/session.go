// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/zahar-sh/Tree/avl"
	"github.com/zahar-sh/Tree/fault"
	"github.com/zahar-sh/Tree/layout"
)

// Session - an interactive editor for a tree of integers
//
// all methods must be called from a single goroutine, Run provides
// that goroutine when input arrives on channels
type Session struct {
	log       *logger.L
	display   Display
	tree      *avl.Tree[int]
	selected  *int
	geometry  layout.Geometry
	colours   Colours
	mode      Mode
	positions map[int]layout.Point
}

// a command handler, the bool result false stops the session
type handler func(s *Session, arguments []string) (bool, error)

var commands map[string]handler

// usage lines shown by help, in display order
var usage = []string{
	"add N          insert N and select it",
	"contains N     select N if present",
	"remove N       delete N",
	"clear          delete every value",
	"format         lay the nodes out by level",
	"width N        set node width",
	"height N       set node height",
	"select N|none  highlight N and its links",
	"move N X Y     place node N at X,Y",
	"pick X Y       select the node under X,Y",
	"list           ascending values",
	"reverse        descending values",
	"levels         values grouped by depth",
	"print          sideways tree with balances",
	"table          node details",
	"canvas         character canvas",
	"check          verify tree invariants",
	"help           this text",
	"quit           leave",
}

func init() {
	commands = map[string]handler{
		"add":      (*Session).add,
		"contains": (*Session).contains,
		"remove":   (*Session).remove,
		"clear":    (*Session).clear,
		"format":   (*Session).format,
		"width":    (*Session).width,
		"height":   (*Session).height,
		"select":   (*Session).selectValue,
		"move":     (*Session).move,
		"pick":     (*Session).pick,
		"list":     show(ModeList),
		"reverse":  show(ModeReverse),
		"levels":   show(ModeLevels),
		"print":    show(ModePrint),
		"table":    show(ModeTable),
		"canvas":   show(ModeCanvas),
		"check":    (*Session).check,
		"help":     (*Session).help,
		"quit":     quit,
		"exit":     quit,
	}
}

// New - create a session holding the initial values laid out by level
func New(display Display, settings Settings, log *logger.L, initial []int) (*Session, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := settings.Geometry.Validate(); nil != err {
		return nil, err
	}

	s := &Session{
		log:       log,
		display:   display,
		tree:      avl.NewOrdered[int](),
		geometry:  settings.Geometry,
		colours:   settings.Colours,
		mode:      ModeLevels,
		positions: make(map[int]layout.Point),
	}
	for _, v := range initial {
		s.tree.Add(v)
	}
	s.layout()

	log.Infof("initial values: %s", s.tree)
	return s, nil
}

// Tree - the tree being edited
func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// Selected - the highlighted value, nil if none
func (s *Session) Selected() *int {
	return s.selected
}

// Position - where a value is drawn
func (s *Session) Position(value int) (layout.Point, bool) {
	p, ok := s.positions[value]
	return p, ok
}

// Geometry - current canvas and node sizes
func (s *Session) Geometry() layout.Geometry {
	return s.geometry
}

// Execute - run one command line
//
// returns false when the session should stop; an empty line does
// nothing
func (s *Session) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return true, nil
	}
	name := strings.ToLower(fields[0])

	h, ok := commands[name]
	if !ok {
		s.log.Debugf("unknown command: %q", name)
		return true, fault.ErrUnknownCommand
	}
	s.log.Debugf("command: %q  arguments: %q", name, fields[1:])
	return h(s, fields[1:])
}

// Repaint - show the current view
func (s *Session) Repaint() error {
	return s.display.Repaint(s.view())
}

// Apply - replace geometry and colours, then lay the tree out again
func (s *Session) Apply(settings Settings) error {
	if err := settings.Geometry.Validate(); nil != err {
		return err
	}
	s.geometry = settings.Geometry
	s.colours = settings.Colours
	s.layout()
	s.log.Infof("settings: canvas: %s  node: %s  colours: %+v", s.geometry.Canvas, s.geometry.Node, s.colours)
	return s.Repaint()
}

func (s *Session) view() View {
	placements := make([]layout.Placement[int], 0, len(s.positions))
	s.tree.ForEach(func(n *avl.Node[int]) {
		placements = append(placements, layout.Placement[int]{
			Node:  n,
			Point: s.positions[n.Value()],
		})
	})
	return View{
		Mode:       s.mode,
		Tree:       s.tree,
		Selected:   s.selected,
		Geometry:   s.geometry,
		Placements: placements,
		Colours:    s.colours,
	}
}

// assign level positions to every node
func (s *Session) layout() {
	for _, p := range layout.Format(s.tree.Levels(), s.geometry) {
		s.positions[p.Node.Value()] = p.Point
	}
}

func (s *Session) add(arguments []string) (bool, error) {
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	if !s.tree.Add(value) {
		s.display.Message("%d is already present", value)
		return true, nil
	}
	s.log.Infof("add: %d", value)
	s.positions[value] = s.geometry.Center()
	s.selected = &value
	s.layout()
	return true, s.Repaint()
}

// the selection is always cleared, even for a malformed number
func (s *Session) contains(arguments []string) (bool, error) {
	s.selected = nil
	value, err := integer(arguments, 0)
	if nil != err {
		return true, firstError(err, s.Repaint())
	}
	if s.tree.Contains(value) {
		s.selected = &value
		s.display.Message("%d found", value)
	} else {
		s.display.Message("%d not found", value)
	}
	return true, s.Repaint()
}

func (s *Session) remove(arguments []string) (bool, error) {
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	if !s.tree.Remove(value) {
		s.display.Message("%d not found", value)
		return true, nil
	}
	s.log.Infof("remove: %d", value)
	delete(s.positions, value)
	if nil != s.selected && value == *s.selected {
		s.selected = nil
	}
	s.layout()
	return true, s.Repaint()
}

func (s *Session) clear(arguments []string) (bool, error) {
	s.log.Info("clear")
	s.tree.Clear()
	s.positions = make(map[int]layout.Point)
	s.selected = nil
	return true, s.Repaint()
}

func (s *Session) format(arguments []string) (bool, error) {
	s.layout()
	return true, s.Repaint()
}

// node size changes keep the current positions
func (s *Session) width(arguments []string) (bool, error) {
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	node := layout.Size{Width: value, Height: s.geometry.Node.Height}
	if err := node.Validate(); nil != err {
		return true, err
	}
	s.geometry.Node = node
	return true, s.Repaint()
}

func (s *Session) height(arguments []string) (bool, error) {
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	node := layout.Size{Width: s.geometry.Node.Width, Height: value}
	if err := node.Validate(); nil != err {
		return true, err
	}
	s.geometry.Node = node
	return true, s.Repaint()
}

func (s *Session) selectValue(arguments []string) (bool, error) {
	if 0 != len(arguments) && "none" == strings.ToLower(arguments[0]) {
		s.selected = nil
		return true, s.Repaint()
	}
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	if !s.tree.Contains(value) {
		return true, fault.ErrValueNotFound
	}
	s.selected = &value
	return true, s.Repaint()
}

func (s *Session) move(arguments []string) (bool, error) {
	value, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	p := layout.Point{}
	if p.X, err = integer(arguments, 1); nil != err {
		return true, err
	}
	if p.Y, err = integer(arguments, 2); nil != err {
		return true, err
	}
	if !s.tree.Contains(value) {
		return true, fault.ErrValueNotFound
	}
	s.geometry.ClampBounds(&p)
	s.positions[value] = p
	return true, s.Repaint()
}

// select the first node in ascending order whose box contains the
// point, a miss clears the selection
func (s *Session) pick(arguments []string) (bool, error) {
	x, err := integer(arguments, 0)
	if nil != err {
		return true, err
	}
	y, err := integer(arguments, 1)
	if nil != err {
		return true, err
	}

	old := s.selected
	s.selected = nil
	for n := s.tree.First(); nil != n; n = n.Next() {
		value := n.Value()
		if s.geometry.Hit(s.positions[value], x, y) {
			s.selected = &value
			break
		}
	}
	if sameSelection(old, s.selected) {
		return true, nil
	}
	return true, s.Repaint()
}

func (s *Session) check(arguments []string) (bool, error) {
	up := s.tree.CheckUp()
	balance := s.tree.CheckBalance()
	order := s.tree.CheckOrder()
	if up && balance && order {
		s.display.Message("tree is consistent")
		return true, nil
	}
	fault.Criticalf("inconsistent tree: parent links: %t  balance: %t  order: %t", up, balance, order)
	return true, fault.ErrInconsistentTree
}

func (s *Session) help(arguments []string) (bool, error) {
	s.display.Message("%s", strings.Join(usage, "\n"))
	return true, nil
}

func quit(s *Session, arguments []string) (bool, error) {
	s.log.Info("quit")
	return false, nil
}

// returns a handler that switches the rendering mode
func show(mode Mode) handler {
	return func(s *Session, arguments []string) (bool, error) {
		s.mode = mode
		return true, s.Repaint()
	}
}

// parse the n-th argument as a signed decimal integer
func integer(arguments []string, n int) (int, error) {
	if n >= len(arguments) {
		return 0, fault.ErrMissingArgument
	}
	value, err := strconv.Atoi(arguments[n])
	if nil != err {
		return 0, fault.ErrInvalidNumber
	}
	return value, nil
}

func sameSelection(a *int, b *int) bool {
	if nil == a || nil == b {
		return a == b
	}
	return *a == *b
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if nil != err {
			return err
		}
	}
	return nil
}
