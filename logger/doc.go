/*
Package logger provides logging functionality to a junction router by
defining the required behavior in [Logger] and providing an
implementation of it with [JunctionLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [JunctionLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*JunctionLogger.Warn], [*JunctionLogger.Error], and [*JunctionLogger.Fatal] produce messages.

# JunctionLogger

The [JunctionLogger] provides all the logging functionality needed by a
junction router; it is the implementation of [Logger] returned by [New].

Log messages emitted by [JunctionLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [ERROR] router/router.go:188 'dispatch failed' log_context: "{"error":"boom","request":{"method":"GET","url":"/x"}}"

The log context is a JSON-encoded [*LogContext], allowing additional
data inessential to the message proper - the in-flight request most of
all - to ride along with it.

# SkipLogger

Sometimes, especially with internal packages, the file and line number
in a log needs to be configurable. [SkipLogger] provides additional
configuration functionality by setting the number of frames to skip back
in order to reach the desired caller.

# Sentry

When the SENTRY_DSN environment variable is set, [New] wraps the
[JunctionLogger] in a [SentryLogger], shipping Warn and above to Sentry
alongside the usual output.
*/
package logger
