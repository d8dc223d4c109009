/*
Package money implements the two money movement operations: withdrawal and
transfer.

Both operations follow the same shape: load the account(s) fresh from the
repository, validate against the balance and pay-in limit invariants, warn
the owner when a threshold is near, mutate, and persist. No state survives
between calls.

Invariants:
  - A withdrawal never drives the balance below zero.
  - A deposit never pushes the cumulative pay-in total past the account's
    pay-in limit (4000).
  - A post-withdrawal balance below 500 triggers a funds-low warning; pay-in
    headroom below 500 triggers an approaching-limit warning. Warnings are
    informational and never block the movement.

The sender's low-funds warning is evaluated before the receiver's pay-in
limit, so a transfer rejected on the receiving side can still have warned
the sender. That matches the historical behaviour of the operation and is
kept deliberately.

Transfers persist the two accounts as independent writes; there is no
cross-account transaction or rollback if the second write fails.
*/
package money
