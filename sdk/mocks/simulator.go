package mocks

import (
	big "math/big"

	common "github.com/ethereum/go-ethereum/common"

	context "context"

	mock "github.com/stretchr/testify/mock"

	types "github.com/smartcontractkit/ccip-bridge/types"
)

// Simulator is an autogenerated mock type for the Simulator type
type Simulator struct {
	mock.Mock
}

type Simulator_Expecter struct {
	mock *mock.Mock
}

func (_m *Simulator) EXPECT() *Simulator_Expecter {
	return &Simulator_Expecter{mock: &_m.Mock}
}

// SimulateCCIPSend provides a mock function with given fields: ctx, router, dest, msg, value
func (_m *Simulator) SimulateCCIPSend(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message, value *big.Int) error {
	ret := _m.Called(ctx, router, dest, msg, value)

	if len(ret) == 0 {
		panic("no return value specified for SimulateCCIPSend")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) error); ok {
		r0 = rf(ctx, router, dest, msg, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Simulator_SimulateCCIPSend_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SimulateCCIPSend'
type Simulator_SimulateCCIPSend_Call struct {
	*mock.Call
}

// SimulateCCIPSend is a helper method to define mock.On call
//   - ctx context.Context
//   - router common.Address
//   - dest types.ChainSelector
//   - msg types.Message
//   - value *big.Int
func (_e *Simulator_Expecter) SimulateCCIPSend(ctx interface{}, router interface{}, dest interface{}, msg interface{}, value interface{}) *Simulator_SimulateCCIPSend_Call {
	return &Simulator_SimulateCCIPSend_Call{Call: _e.mock.On("SimulateCCIPSend", ctx, router, dest, msg, value)}
}

func (_c *Simulator_SimulateCCIPSend_Call) Run(run func(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message, value *big.Int)) *Simulator_SimulateCCIPSend_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(types.ChainSelector), args[3].(types.Message), args[4].(*big.Int))
	})
	return _c
}

func (_c *Simulator_SimulateCCIPSend_Call) Return(_a0 error) *Simulator_SimulateCCIPSend_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Simulator_SimulateCCIPSend_Call) RunAndReturn(run func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) error) *Simulator_SimulateCCIPSend_Call {
	_c.Call.Return(run)
	return _c
}

// NewSimulator creates a new instance of Simulator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSimulator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Simulator {
	mock := &Simulator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
