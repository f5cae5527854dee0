package main

import "errors"

var errNotEnoughArguments = errors.New("not enough arguments")
var errBadIterationCount = errors.New("number of iterations must be an integer greater than 0")
