// Package member provides the Member aggregate for the vidstore system.
// A member is a customer holding a reward balance: internal, non-cash credit
// usable toward purchases and replenished via refunds and conversions.
//
// Key business rules:
//   - The reward balance is never negative
//   - Debits are all-or-nothing and fail with RewardNotEnoughError on shortfall
//   - Balance mutations go exclusively through DebitReward and CreditReward
//
// Orders debit the balance at purchase time and credit it back during
// cancellation refunds and refund-to-reward conversions.
package member
