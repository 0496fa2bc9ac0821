package bridge

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/ccip-bridge/internal/testutils/chaintest"
	"github.com/smartcontractkit/ccip-bridge/sdk"
	"github.com/smartcontractkit/ccip-bridge/sdk/evm"
	"github.com/smartcontractkit/ccip-bridge/sdk/mocks"
	"github.com/smartcontractkit/ccip-bridge/types"
)

var (
	testRouter = common.HexToAddress("0x34B03Cb9086d7D758AC55af71584F81A598759FE")
	testToken  = common.HexToAddress("0x8d0D000Ee44948FC98c9B98A4FA4921476f08B0d")
	testLink   = common.HexToAddress("0x404460C6A5EdE2D891e8297795264fDe62ADBB75")
	testSender = common.HexToAddress("0x6007723DAC9Bb830f622bB4561E8017f021b9fB5")
	testFee    = big.NewInt(7858834580893062)
)

func testMessage(t *testing.T, amount int64) types.Message {
	t.Helper()

	msg, err := evm.NewTokenTransferMessage(testSender, testToken, big.NewInt(amount), big.NewInt(0), true)
	require.NoError(t, err)

	return msg
}

func approvalTx(hash string) types.TransactionResult {
	return types.TransactionResult{Hash: hash}
}

func TestBridge_Send(t *testing.T) {
	t.Parallel()

	const amount = 10000000000000000

	tests := []struct {
		name          string
		req           func(t *testing.T) SendRequest
		mockSetup     func(m *mocks.Executor, msg types.Message)
		wantApprovals []string
		wantValue     *big.Int
		wantReceipt   bool
		wantErr       string
		wantErrType   any
	}{
		{
			name: "success: allowance is short so the exact amount is approved first",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount)}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount-1), nil)
				m.EXPECT().TokenMetadata(mock.Anything, testToken).
					Return(types.TokenMetadata{Symbol: "USD1", Decimals: 18}, nil)
				m.EXPECT().Approve(mock.Anything, testToken, testRouter, big.NewInt(amount)).Return(approvalTx("0xa1"), nil)
				m.EXPECT().WaitMined(mock.Anything, "0xa1").Return(types.TransactionReceipt{Hash: "0xa1", Success: true}, nil)
				m.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
					Return(types.TransactionResult{Hash: "0xc0"}, nil)
			},
			wantApprovals: []string{"0xa1"},
			wantValue:     testFee,
		},
		{
			name: "success: allowance covers the amount so no approval is sent",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount)}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount), nil)
				m.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
					Return(types.TransactionResult{Hash: "0xc0"}, nil)
			},
			wantValue: testFee,
		},
		{
			name: "success: preflight and wait",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{
					Dest:      chaintest.Chain2Selector,
					Message:   testMessage(t, amount),
					Preflight: true,
					Wait:      true,
				}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().IsChainSupported(mock.Anything, testRouter, chaintest.Chain2Selector).Return(true, nil)
				m.EXPECT().BalanceOf(mock.Anything, testToken, testSender).Return(big.NewInt(amount), nil)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount), nil)
				m.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
					Return(types.TransactionResult{Hash: "0xc0"}, nil)
				m.EXPECT().WaitMined(mock.Anything, "0xc0").
					Return(types.TransactionReceipt{Hash: "0xc0", BlockNumber: 10, Success: true}, nil)
			},
			wantValue:   testFee,
			wantReceipt: true,
		},
		{
			name: "success: fee paid in a token is approved with the transfer and no value is sent",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				msg := testMessage(t, amount)
				msg.FeeToken = testLink
				msg.TokenAmounts = append(msg.TokenAmounts, types.TokenAmount{Token: testToken, Amount: big.NewInt(5)})

				return SendRequest{Dest: chaintest.Chain2Selector, Message: msg}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().TokenMetadata(mock.Anything, testLink).Return(types.TokenMetadata{}, errors.New("no symbol"))
				m.EXPECT().TokenMetadata(mock.Anything, testToken).
					Return(types.TokenMetadata{Symbol: "USD1", Decimals: 18}, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount), nil)
				m.EXPECT().Approve(mock.Anything, testToken, testRouter, big.NewInt(amount+5)).Return(approvalTx("0xa1"), nil)
				m.EXPECT().WaitMined(mock.Anything, "0xa1").Return(types.TransactionReceipt{Success: true}, nil)
				m.EXPECT().Allowance(mock.Anything, testLink, testSender, testRouter).Return(big.NewInt(0), nil)
				m.EXPECT().Approve(mock.Anything, testLink, testRouter, testFee).Return(approvalTx("0xa2"), nil)
				m.EXPECT().WaitMined(mock.Anything, "0xa2").Return(types.TransactionReceipt{Success: true}, nil)
				m.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, big.NewInt(0)).
					Return(types.TransactionResult{Hash: "0xc0"}, nil)
			},
			wantApprovals: []string{"0xa1", "0xa2"},
			wantValue:     big.NewInt(0),
		},
		{
			name: "failure: fee quote fails",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount)}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(nil, assert.AnError)
			},
			wantErr: assert.AnError.Error(),
		},
		{
			name: "failure: approval reverts and nothing is sent",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount)}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(0), nil)
				m.EXPECT().TokenMetadata(mock.Anything, testToken).
					Return(types.TokenMetadata{Symbol: "USD1", Decimals: 18}, nil)
				m.EXPECT().Approve(mock.Anything, testToken, testRouter, big.NewInt(amount)).Return(approvalTx("0xa1"), nil)
				m.EXPECT().WaitMined(mock.Anything, "0xa1").Return(types.TransactionReceipt{Success: false}, nil)
			},
			wantErr:     "approve transaction 0xa1 reverted",
			wantErrType: &TransactionRevertedError{},
		},
		{
			name: "failure: send reverts while waiting",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount), Wait: true}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
				m.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount), nil)
				m.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
					Return(types.TransactionResult{Hash: "0xc0"}, nil)
				m.EXPECT().WaitMined(mock.Anything, "0xc0").Return(types.TransactionReceipt{Success: false}, nil)
			},
			wantErr:     "ccipSend transaction 0xc0 reverted",
			wantErrType: &TransactionRevertedError{},
		},
		{
			name: "failure: preflight lane not supported",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount), Preflight: true}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().IsChainSupported(mock.Anything, testRouter, chaintest.Chain2Selector).Return(false, nil)
			},
			wantErr:     "router 0x34B03Cb9086d7D758AC55af71584F81A598759FE does not support destination chain 5009297550715157269",
			wantErrType: &UnsupportedLaneError{},
		},
		{
			name: "failure: preflight insufficient balance",
			req: func(t *testing.T) SendRequest {
				t.Helper()
				return SendRequest{Dest: chaintest.Chain2Selector, Message: testMessage(t, amount), Preflight: true}
			},
			mockSetup: func(m *mocks.Executor, msg types.Message) {
				m.EXPECT().Address().Return(testSender)
				m.EXPECT().IsChainSupported(mock.Anything, testRouter, chaintest.Chain2Selector).Return(true, nil)
				m.EXPECT().BalanceOf(mock.Anything, testToken, testSender).Return(big.NewInt(1), nil)
			},
			wantErr: "insufficient balance of token 0x8d0D000Ee44948FC98c9B98A4FA4921476f08B0d: " +
				"have 1, need 10000000000000000",
			wantErrType: &InsufficientBalanceError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req(t)
			executor := mocks.NewExecutor(t)
			tt.mockSetup(executor, req.Message)

			got, err := NewBridge(executor, testRouter).Send(context.Background(), req)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)

				switch tt.wantErrType.(type) {
				case *TransactionRevertedError:
					var target *TransactionRevertedError
					assert.ErrorAs(t, err, &target)
				case *UnsupportedLaneError:
					var target *UnsupportedLaneError
					assert.ErrorAs(t, err, &target)
				case *InsufficientBalanceError:
					var target *InsufficientBalanceError
					assert.ErrorAs(t, err, &target)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "0xc0", got.Send.Hash)
			assert.Equal(t, 0, testFee.Cmp(got.Fee))

			hashes := make([]string, 0, len(got.Approvals))
			for _, a := range got.Approvals {
				hashes = append(hashes, a.Hash)
			}
			assert.Equal(t, len(tt.wantApprovals), len(hashes))
			if len(tt.wantApprovals) > 0 {
				assert.Equal(t, tt.wantApprovals, hashes)
			}

			if tt.wantReceipt {
				require.NotNil(t, got.Receipt)
				assert.Equal(t, uint64(10), got.Receipt.BlockNumber)
			} else {
				assert.Nil(t, got.Receipt)
			}
		})
	}
}

func TestBridge_SendSimulatesOnPreflight(t *testing.T) {
	t.Parallel()

	const amount = 10000000000000000

	msg := testMessage(t, amount)
	req := SendRequest{Dest: chaintest.Chain2Selector, Message: msg, Preflight: true}

	newExecutor := func(t *testing.T) *mocks.Executor {
		t.Helper()

		executor := mocks.NewExecutor(t)
		executor.EXPECT().Address().Return(testSender)
		executor.EXPECT().IsChainSupported(mock.Anything, testRouter, chaintest.Chain2Selector).Return(true, nil)
		executor.EXPECT().BalanceOf(mock.Anything, testToken, testSender).Return(big.NewInt(amount), nil)
		executor.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
		executor.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(amount), nil)

		return executor
	}

	t.Run("simulation passes", func(t *testing.T) {
		t.Parallel()

		executor := newExecutor(t)
		executor.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
			Return(types.TransactionResult{Hash: "0xc0"}, nil)

		simulator := mocks.NewSimulator(t)
		simulator.EXPECT().SimulateCCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).Return(nil)

		got, err := NewBridge(executor, testRouter).WithSimulator(simulator).Send(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "0xc0", got.Send.Hash)
	})

	t.Run("simulation reverts and nothing is sent", func(t *testing.T) {
		t.Parallel()

		executor := newExecutor(t)

		simulator := mocks.NewSimulator(t)
		simulator.EXPECT().SimulateCCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
			Return(assert.AnError)

		_, err := NewBridge(executor, testRouter).WithSimulator(simulator).Send(context.Background(), req)
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestBridge_SendLogsFee(t *testing.T) {
	t.Parallel()

	const amount = 10000000000000000

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

	msg := testMessage(t, amount)
	executor := mocks.NewExecutor(t)
	executor.EXPECT().Address().Return(testSender)
	executor.EXPECT().GetFee(mock.Anything, testRouter, chaintest.Chain2Selector, msg).Return(testFee, nil)
	executor.EXPECT().Allowance(mock.Anything, testToken, testSender, testRouter).Return(big.NewInt(0), nil)
	executor.EXPECT().TokenMetadata(mock.Anything, testToken).Return(types.TokenMetadata{Symbol: "USD1", Decimals: 18}, nil)
	executor.EXPECT().Approve(mock.Anything, testToken, testRouter, big.NewInt(amount)).Return(approvalTx("0xa1"), nil)
	executor.EXPECT().WaitMined(mock.Anything, "0xa1").Return(types.TransactionReceipt{Success: true}, nil)
	executor.EXPECT().CCIPSend(mock.Anything, testRouter, chaintest.Chain2Selector, msg, testFee).
		Return(types.TransactionResult{Hash: "0xc0"}, nil)

	_, err := NewBridge(executor, testRouter).Send(ctx, SendRequest{Dest: chaintest.Chain2Selector, Message: msg})
	require.NoError(t, err)

	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}

	assert.Equal(t, []string{
		"CCIP fee in native token: 0.007858834580893062",
		"Approving 0.01 USD1 to router 0x34B03Cb9086d7D758AC55af71584F81A598759FE...",
		"Approved token successfully, txHash=0xa1",
		"Sending message to chain 5009297550715157269",
		"Sent token with CCIP successfully, txHash=0xc0",
	}, messages)
}

func TestRequiredAmounts(t *testing.T) {
	t.Parallel()

	msg := types.Message{
		TokenAmounts: []types.TokenAmount{
			{Token: testToken, Amount: big.NewInt(1)},
			{Token: testLink, Amount: big.NewInt(2)},
			{Token: testToken, Amount: big.NewInt(3)},
		},
	}

	got := requiredAmounts(msg, big.NewInt(100))
	require.Len(t, got, 2)
	assert.Equal(t, testToken, got[0].Token)
	assert.Equal(t, "4", got[0].Amount.String())
	assert.Equal(t, testLink, got[1].Token)
	assert.Equal(t, "2", got[1].Amount.String())

	msg.FeeToken = testLink
	got = requiredAmounts(msg, big.NewInt(100))
	require.Len(t, got, 2)
	assert.Equal(t, "102", got[1].Amount.String())

	// the message amounts are not modified
	assert.Equal(t, "1", msg.TokenAmounts[0].Amount.String())
}
