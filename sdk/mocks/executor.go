// Package mocks holds testify mocks of the sdk interfaces with typed EXPECT helpers.
package mocks

import (
	big "math/big"

	common "github.com/ethereum/go-ethereum/common"

	context "context"

	mock "github.com/stretchr/testify/mock"

	types "github.com/smartcontractkit/ccip-bridge/types"
)

// Executor is an autogenerated mock type for the Executor type
type Executor struct {
	mock.Mock
}

type Executor_Expecter struct {
	mock *mock.Mock
}

func (_m *Executor) EXPECT() *Executor_Expecter {
	return &Executor_Expecter{mock: &_m.Mock}
}

// Address provides a mock function with no fields
func (_m *Executor) Address() common.Address {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Address")
	}

	var r0 common.Address
	if rf, ok := ret.Get(0).(func() common.Address); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Address)
	}

	return r0
}

// Executor_Address_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Address'
type Executor_Address_Call struct {
	*mock.Call
}

// Address is a helper method to define mock.On call
func (_e *Executor_Expecter) Address() *Executor_Address_Call {
	return &Executor_Address_Call{Call: _e.mock.On("Address")}
}

func (_c *Executor_Address_Call) Run(run func()) *Executor_Address_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *Executor_Address_Call) Return(_a0 common.Address) *Executor_Address_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Executor_Address_Call) RunAndReturn(run func() common.Address) *Executor_Address_Call {
	_c.Call.Return(run)
	return _c
}

// Allowance provides a mock function with given fields: ctx, token, owner, spender
func (_m *Executor) Allowance(ctx context.Context, token common.Address, owner common.Address, spender common.Address) (*big.Int, error) {
	ret := _m.Called(ctx, token, owner, spender)

	if len(ret) == 0 {
		panic("no return value specified for Allowance")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address, common.Address) (*big.Int, error)); ok {
		return rf(ctx, token, owner, spender)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address, common.Address) *big.Int); ok {
		r0 = rf(ctx, token, owner, spender)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, common.Address, common.Address) error); ok {
		r1 = rf(ctx, token, owner, spender)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_Allowance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Allowance'
type Executor_Allowance_Call struct {
	*mock.Call
}

// Allowance is a helper method to define mock.On call
//   - ctx context.Context
//   - token common.Address
//   - owner common.Address
//   - spender common.Address
func (_e *Executor_Expecter) Allowance(ctx interface{}, token interface{}, owner interface{}, spender interface{}) *Executor_Allowance_Call {
	return &Executor_Allowance_Call{Call: _e.mock.On("Allowance", ctx, token, owner, spender)}
}

func (_c *Executor_Allowance_Call) Run(run func(ctx context.Context, token common.Address, owner common.Address, spender common.Address)) *Executor_Allowance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(common.Address), args[3].(common.Address))
	})
	return _c
}

func (_c *Executor_Allowance_Call) Return(_a0 *big.Int, _a1 error) *Executor_Allowance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_Allowance_Call) RunAndReturn(run func(context.Context, common.Address, common.Address, common.Address) (*big.Int, error)) *Executor_Allowance_Call {
	_c.Call.Return(run)
	return _c
}

// Approve provides a mock function with given fields: ctx, token, spender, amount
func (_m *Executor) Approve(ctx context.Context, token common.Address, spender common.Address, amount *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, token, spender, amount)

	if len(ret) == 0 {
		panic("no return value specified for Approve")
	}

	var r0 types.TransactionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address, *big.Int) (types.TransactionResult, error)); ok {
		return rf(ctx, token, spender, amount)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address, *big.Int) types.TransactionResult); ok {
		r0 = rf(ctx, token, spender, amount)
	} else {
		r0 = ret.Get(0).(types.TransactionResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, common.Address, *big.Int) error); ok {
		r1 = rf(ctx, token, spender, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_Approve_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Approve'
type Executor_Approve_Call struct {
	*mock.Call
}

// Approve is a helper method to define mock.On call
//   - ctx context.Context
//   - token common.Address
//   - spender common.Address
//   - amount *big.Int
func (_e *Executor_Expecter) Approve(ctx interface{}, token interface{}, spender interface{}, amount interface{}) *Executor_Approve_Call {
	return &Executor_Approve_Call{Call: _e.mock.On("Approve", ctx, token, spender, amount)}
}

func (_c *Executor_Approve_Call) Run(run func(ctx context.Context, token common.Address, spender common.Address, amount *big.Int)) *Executor_Approve_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(common.Address), args[3].(*big.Int))
	})
	return _c
}

func (_c *Executor_Approve_Call) Return(_a0 types.TransactionResult, _a1 error) *Executor_Approve_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_Approve_Call) RunAndReturn(run func(context.Context, common.Address, common.Address, *big.Int) (types.TransactionResult, error)) *Executor_Approve_Call {
	_c.Call.Return(run)
	return _c
}

// BalanceOf provides a mock function with given fields: ctx, token, owner
func (_m *Executor) BalanceOf(ctx context.Context, token common.Address, owner common.Address) (*big.Int, error) {
	ret := _m.Called(ctx, token, owner)

	if len(ret) == 0 {
		panic("no return value specified for BalanceOf")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address) (*big.Int, error)); ok {
		return rf(ctx, token, owner)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, common.Address) *big.Int); ok {
		r0 = rf(ctx, token, owner)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, common.Address) error); ok {
		r1 = rf(ctx, token, owner)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_BalanceOf_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BalanceOf'
type Executor_BalanceOf_Call struct {
	*mock.Call
}

// BalanceOf is a helper method to define mock.On call
//   - ctx context.Context
//   - token common.Address
//   - owner common.Address
func (_e *Executor_Expecter) BalanceOf(ctx interface{}, token interface{}, owner interface{}) *Executor_BalanceOf_Call {
	return &Executor_BalanceOf_Call{Call: _e.mock.On("BalanceOf", ctx, token, owner)}
}

func (_c *Executor_BalanceOf_Call) Run(run func(ctx context.Context, token common.Address, owner common.Address)) *Executor_BalanceOf_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(common.Address))
	})
	return _c
}

func (_c *Executor_BalanceOf_Call) Return(_a0 *big.Int, _a1 error) *Executor_BalanceOf_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_BalanceOf_Call) RunAndReturn(run func(context.Context, common.Address, common.Address) (*big.Int, error)) *Executor_BalanceOf_Call {
	_c.Call.Return(run)
	return _c
}

// CCIPSend provides a mock function with given fields: ctx, router, dest, msg, value
func (_m *Executor) CCIPSend(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message, value *big.Int) (types.TransactionResult, error) {
	ret := _m.Called(ctx, router, dest, msg, value)

	if len(ret) == 0 {
		panic("no return value specified for CCIPSend")
	}

	var r0 types.TransactionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) (types.TransactionResult, error)); ok {
		return rf(ctx, router, dest, msg, value)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) types.TransactionResult); ok {
		r0 = rf(ctx, router, dest, msg, value)
	} else {
		r0 = ret.Get(0).(types.TransactionResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) error); ok {
		r1 = rf(ctx, router, dest, msg, value)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_CCIPSend_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CCIPSend'
type Executor_CCIPSend_Call struct {
	*mock.Call
}

// CCIPSend is a helper method to define mock.On call
//   - ctx context.Context
//   - router common.Address
//   - dest types.ChainSelector
//   - msg types.Message
//   - value *big.Int
func (_e *Executor_Expecter) CCIPSend(ctx interface{}, router interface{}, dest interface{}, msg interface{}, value interface{}) *Executor_CCIPSend_Call {
	return &Executor_CCIPSend_Call{Call: _e.mock.On("CCIPSend", ctx, router, dest, msg, value)}
}

func (_c *Executor_CCIPSend_Call) Run(run func(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message, value *big.Int)) *Executor_CCIPSend_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(types.ChainSelector), args[3].(types.Message), args[4].(*big.Int))
	})
	return _c
}

func (_c *Executor_CCIPSend_Call) Return(_a0 types.TransactionResult, _a1 error) *Executor_CCIPSend_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_CCIPSend_Call) RunAndReturn(run func(context.Context, common.Address, types.ChainSelector, types.Message, *big.Int) (types.TransactionResult, error)) *Executor_CCIPSend_Call {
	_c.Call.Return(run)
	return _c
}

// GetFee provides a mock function with given fields: ctx, router, dest, msg
func (_m *Executor) GetFee(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message) (*big.Int, error) {
	ret := _m.Called(ctx, router, dest, msg)

	if len(ret) == 0 {
		panic("no return value specified for GetFee")
	}

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector, types.Message) (*big.Int, error)); ok {
		return rf(ctx, router, dest, msg)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector, types.Message) *big.Int); ok {
		r0 = rf(ctx, router, dest, msg)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*big.Int)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, types.ChainSelector, types.Message) error); ok {
		r1 = rf(ctx, router, dest, msg)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_GetFee_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetFee'
type Executor_GetFee_Call struct {
	*mock.Call
}

// GetFee is a helper method to define mock.On call
//   - ctx context.Context
//   - router common.Address
//   - dest types.ChainSelector
//   - msg types.Message
func (_e *Executor_Expecter) GetFee(ctx interface{}, router interface{}, dest interface{}, msg interface{}) *Executor_GetFee_Call {
	return &Executor_GetFee_Call{Call: _e.mock.On("GetFee", ctx, router, dest, msg)}
}

func (_c *Executor_GetFee_Call) Run(run func(ctx context.Context, router common.Address, dest types.ChainSelector, msg types.Message)) *Executor_GetFee_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(types.ChainSelector), args[3].(types.Message))
	})
	return _c
}

func (_c *Executor_GetFee_Call) Return(_a0 *big.Int, _a1 error) *Executor_GetFee_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_GetFee_Call) RunAndReturn(run func(context.Context, common.Address, types.ChainSelector, types.Message) (*big.Int, error)) *Executor_GetFee_Call {
	_c.Call.Return(run)
	return _c
}

// IsChainSupported provides a mock function with given fields: ctx, router, dest
func (_m *Executor) IsChainSupported(ctx context.Context, router common.Address, dest types.ChainSelector) (bool, error) {
	ret := _m.Called(ctx, router, dest)

	if len(ret) == 0 {
		panic("no return value specified for IsChainSupported")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector) (bool, error)); ok {
		return rf(ctx, router, dest)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address, types.ChainSelector) bool); ok {
		r0 = rf(ctx, router, dest)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address, types.ChainSelector) error); ok {
		r1 = rf(ctx, router, dest)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_IsChainSupported_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IsChainSupported'
type Executor_IsChainSupported_Call struct {
	*mock.Call
}

// IsChainSupported is a helper method to define mock.On call
//   - ctx context.Context
//   - router common.Address
//   - dest types.ChainSelector
func (_e *Executor_Expecter) IsChainSupported(ctx interface{}, router interface{}, dest interface{}) *Executor_IsChainSupported_Call {
	return &Executor_IsChainSupported_Call{Call: _e.mock.On("IsChainSupported", ctx, router, dest)}
}

func (_c *Executor_IsChainSupported_Call) Run(run func(ctx context.Context, router common.Address, dest types.ChainSelector)) *Executor_IsChainSupported_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address), args[2].(types.ChainSelector))
	})
	return _c
}

func (_c *Executor_IsChainSupported_Call) Return(_a0 bool, _a1 error) *Executor_IsChainSupported_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_IsChainSupported_Call) RunAndReturn(run func(context.Context, common.Address, types.ChainSelector) (bool, error)) *Executor_IsChainSupported_Call {
	_c.Call.Return(run)
	return _c
}

// TokenMetadata provides a mock function with given fields: ctx, token
func (_m *Executor) TokenMetadata(ctx context.Context, token common.Address) (types.TokenMetadata, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for TokenMetadata")
	}

	var r0 types.TokenMetadata
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) (types.TokenMetadata, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, common.Address) types.TokenMetadata); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(types.TokenMetadata)
	}

	if rf, ok := ret.Get(1).(func(context.Context, common.Address) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_TokenMetadata_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TokenMetadata'
type Executor_TokenMetadata_Call struct {
	*mock.Call
}

// TokenMetadata is a helper method to define mock.On call
//   - ctx context.Context
//   - token common.Address
func (_e *Executor_Expecter) TokenMetadata(ctx interface{}, token interface{}) *Executor_TokenMetadata_Call {
	return &Executor_TokenMetadata_Call{Call: _e.mock.On("TokenMetadata", ctx, token)}
}

func (_c *Executor_TokenMetadata_Call) Run(run func(ctx context.Context, token common.Address)) *Executor_TokenMetadata_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(common.Address))
	})
	return _c
}

func (_c *Executor_TokenMetadata_Call) Return(_a0 types.TokenMetadata, _a1 error) *Executor_TokenMetadata_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_TokenMetadata_Call) RunAndReturn(run func(context.Context, common.Address) (types.TokenMetadata, error)) *Executor_TokenMetadata_Call {
	_c.Call.Return(run)
	return _c
}

// WaitMined provides a mock function with given fields: ctx, txHash
func (_m *Executor) WaitMined(ctx context.Context, txHash string) (types.TransactionReceipt, error) {
	ret := _m.Called(ctx, txHash)

	if len(ret) == 0 {
		panic("no return value specified for WaitMined")
	}

	var r0 types.TransactionReceipt
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (types.TransactionReceipt, error)); ok {
		return rf(ctx, txHash)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) types.TransactionReceipt); ok {
		r0 = rf(ctx, txHash)
	} else {
		r0 = ret.Get(0).(types.TransactionReceipt)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, txHash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Executor_WaitMined_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WaitMined'
type Executor_WaitMined_Call struct {
	*mock.Call
}

// WaitMined is a helper method to define mock.On call
//   - ctx context.Context
//   - txHash string
func (_e *Executor_Expecter) WaitMined(ctx interface{}, txHash interface{}) *Executor_WaitMined_Call {
	return &Executor_WaitMined_Call{Call: _e.mock.On("WaitMined", ctx, txHash)}
}

func (_c *Executor_WaitMined_Call) Run(run func(ctx context.Context, txHash string)) *Executor_WaitMined_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *Executor_WaitMined_Call) Return(_a0 types.TransactionReceipt, _a1 error) *Executor_WaitMined_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Executor_WaitMined_Call) RunAndReturn(run func(context.Context, string) (types.TransactionReceipt, error)) *Executor_WaitMined_Call {
	_c.Call.Return(run)
	return _c
}

// NewExecutor creates a new instance of Executor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewExecutor(t interface {
	mock.TestingT
	Cleanup(func())
}) *Executor {
	mock := &Executor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
