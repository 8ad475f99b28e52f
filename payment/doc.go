/*
Package payment builds the scripts and addresses paying to a public key, a
set of public keys or an arbitrary script.

A Payment carries both the legacy (Hash, Script) and the segwit
(WitnessHash, WitnessScript) forms of the same commitment, so that a single
value renders as p2pkh or p2wpkh, and wrapping it with FromPayment gives the
p2sh or p2wsh forms, nested segwit included.
*/
package payment
