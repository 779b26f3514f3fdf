// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package funge is a generated GoMock package.
package funge

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockConsole is a mock of Console interface.
type MockConsole struct {
	ctrl     *gomock.Controller
	recorder *MockConsoleMockRecorder
}

// MockConsoleMockRecorder is the mock recorder for MockConsole.
type MockConsoleMockRecorder struct {
	mock *MockConsole
}

// NewMockConsole creates a new mock instance.
func NewMockConsole(ctrl *gomock.Controller) *MockConsole {
	mock := &MockConsole{ctrl: ctrl}
	mock.recorder = &MockConsoleMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConsole) EXPECT() *MockConsoleMockRecorder {
	return m.recorder
}

// WriteCharacter mocks base method.
func (m *MockConsole) WriteCharacter(value Cell) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "WriteCharacter", value)
}

// WriteCharacter indicates an expected call of WriteCharacter.
func (mr *MockConsoleMockRecorder) WriteCharacter(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteCharacter", reflect.TypeOf((*MockConsole)(nil).WriteCharacter), value)
}

// WriteDecimal mocks base method.
func (m *MockConsole) WriteDecimal(value Cell) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "WriteDecimal", value)
}

// WriteDecimal indicates an expected call of WriteDecimal.
func (mr *MockConsoleMockRecorder) WriteDecimal(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteDecimal", reflect.TypeOf((*MockConsole)(nil).WriteDecimal), value)
}
