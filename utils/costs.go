package utils

// Relative costs of circuit elements once the gate graph is compiled into
// polynomial constraints. An AND gate raises the degree, an XOR gate does not.
const CostOfInput = 1000
const CostOfVariable = 100
const CostOfAndGate = 10
const CostOfXorGate = 3
